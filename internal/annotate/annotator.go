// Package annotate attaches short comments to well known paths.
package annotate

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"foldersize/internal/domain"
)

type annotation struct {
	comment  string
	patterns []*regexp.Regexp
}

// Annotator matches paths against an ordered table of comments. A path can
// collect several comments; they keep table order.
type Annotator struct {
	annotations []annotation
}

// New compiles the built-in table for the running platform.
func New() *Annotator {
	annotator, err := compile(filepath.Separator)
	if err != nil {
		panic(err)
	}
	return annotator
}

func compile(separator rune) (*Annotator, error) {
	annotator := &Annotator{annotations: make([]annotation, 0, len(table))}
	for _, row := range table {
		compiled := make([]*regexp.Regexp, 0, len(row.patterns))
		for _, pattern := range row.patterns {
			re, err := regexp.Compile(fixSeparators(pattern, separator))
			if err != nil {
				return nil, fmt.Errorf("annotation %q: %w", row.comment, err)
			}
			compiled = append(compiled, re)
		}
		annotator.annotations = append(annotator.annotations, annotation{comment: row.comment, patterns: compiled})
	}
	return annotator, nil
}

func fixSeparators(pattern string, separator rune) string {
	if separator == '\\' {
		return pattern
	}
	return strings.ReplaceAll(pattern, `\\`, string(separator))
}

// Comments returns every comment whose patterns match path.
func (annotator *Annotator) Comments(path string) []string {
	if path == "" {
		return nil
	}
	var comments []string
	for _, annotation := range annotator.annotations {
		for _, pattern := range annotation.patterns {
			if pattern.MatchString(path) {
				comments = append(comments, annotation.comment)
				break
			}
		}
	}
	return comments
}

func (annotator *Annotator) Comment(path string) string {
	return strings.Join(annotator.Comments(path), " ")
}

// ForEntry annotates an entry by its path. Rollups share their parent's path
// and never get a comment of their own.
func (annotator *Annotator) ForEntry(entry *domain.Entry) string {
	if entry == nil || entry.Kind == domain.KindRollup {
		return ""
	}
	return annotator.Comment(entry.Path)
}
