package annotate

// Patterns use `\\` for a path separator, written the Windows way, and are
// rewritten for the running platform when compiled. Keep entries alphabetical
// within each group by first folder name, ignoring "A" and "The".
var table = []struct {
	comment  string
	patterns []string
}{
	// games
	{"Shoot xenos. Get some!", []string{`\\Aliens Fireteam Elite$`}},
	{"Get killed by robots while hiding from xenomorphs.", []string{`\\Alien Isolation$`}},
	{"This was the one you wanted right? Not Dead Space...?", []string{`Callisto Protocol[\w\s]*$`}},
	{"Meet strangers online so that they can insult you.", []string{`\\Call of Duty[\w\s]*$`}},
	{"Enter The Oldest House.", []string{`\\Control$`}},
	{"Shoot other people, even ones you like.", []string{`\\Counter-Strike Global Offensive$`}},
	{"Lead your flock of devil worshipping cartoon characters.", []string{`\\(?i)Cult of the Lamb$`}},
	{"Gonks, Corpos and Netrunners.", []string{`\\(?i)cyberpunk2077[\w\s]*$`}},
	{"A dreadful, awful, beautiful game that will take over your life.", []string{`\\(?i)Dark Souls[\w\s]*$`}},
	{"Solve problems by walking on the ƃuıןıǝɔ.", []string{`\\(?i)darq$`}},
	{"So. Many. Limbs!", []string{`\\Dead Space`}},
	{"Using words would only make me seem foolish.", []string{`\\(?i)Death[\w\s]*Stranding$`}},
	{"Grind Guardian!", []string{`\\Destiny[\w\s]*$`}},
	{"Dungeon-crawling roguelike top-down hack and slash demon slaughter.", []string{`\\(?i)diablo[\w\s]*$`}},
	{"Very... well, talky. Has a hipster beard.", []string{`\\Disco Elysium$`}},
	{"There are rats in this game, like, a lot of rats.", []string{`\\Dishonored[\w\s]*$`}},
	{"The never ending suffering of Doom guy.", []string{`\\(?i)doom[\w\s]*$`}},
	{"A naked pumpkin-headed guy.", []string{`\\ELDEN RING$`}},
	{"Dog based post nuclear recreation engine.", []string{`\\Fallout[\w\s]*$`}},
	{"Since the first Final Fantasy there has been a long line of sequels, ironically.", []string{`\\(?i)Final Fantasy[\w\s]*$`}},
	{"Scrub!", []string{`\\Fortnite$`}},
	{"I have no idea why this game is so popular, and, at this point, I'm afraid to ask.", []string{`\\Genshin Impact[\w\s]*$`}},
	{`"Keep up boy!"`, []string{`\\GodOfWar$`}},
	{"Trevor Philips approves.", []string{`\\GTA[\w\s\.]*$`}},
	{"Master Chief Sir!", []string{`\\(?i)Halo[\w\s\.]*$`}},
	{"Diabolically good hell-based beat-shooter.", []string{`\\Metal Hellsinger$`}},
	{"Low-rez Roblox.", []string{`\\Minecraft[\w\s\.]*$`}},
	{"Death Stranding on the moon.", []string{`\\Moon Runner$`}},
	{"I know nothing about this game.", []string{`\\League of Legends`}},
	{"Smart and stylish turn-based tactical RPG.", []string{`\\Othercide$`}},
	{"A bit memey, but fine.", []string{`\\Overwatch[\w\s\.]*$`}},
	{"I've never even heard of Wipeout...", []string{`\\Redout\d*$`}},
	{"The Umbrella Corporation's finest!", []string{`\\(?i)resident\s*evil[\w\s\.]*$`}},
	{"The main point of this game is to experience death, endlessly.", []string{`\\Returnal$`}},
	{"Free Minecraft.", []string{`\\Roblox[\w\s\.]*$`}},
	{"Rollerskating and bullet-time violence.", []string{`\\(?i)rollerdrome$`}},
	{"Soccer with cars? Would improve the Premiership...", []string{`\\(?i)Rocket[\s]*League$`}},
	{"Destructible bullet-time shooter. Pretty good.", []string{`\\SeveredSteel$`}},
	{"Lead someone else's boring life.", []string{`\\(?i)Sims[\w\s]*$`, `\\(?i)TheSims[\w\s]*$`}},
	{"Wait... I thought this was The Witcher?", []string{`\\(?i)skyrim[\w\s]*$`}},
	{"Hate sleep, but love galactic domination? Then this is the game for you.", []string{`\\Stellaris$`}},
	{"Well, you play a cat. With a backpack. Surprisingly realistic.", []string{`\\Stray$`}},
	{"Fighting in giant robots, except when you need to get out and run around.", []string{`\\Titanfall[\w\s]*$`}},
	{"I've heard it's pretty good, keyboard and mouse only.", []string{`\\(?i)Valorant[\w\s]*$`}},
	{"Grind Guardian, I mean, Tenno!", []string{`\\Warframe[\w\s]*$`}},
	{"The light hearted adventures of Geralt and Ciri.", []string{`\\The Witcher[\w\s]*$`}},
	{"Second Life in Middle Earth.", []string{`\\(?i)World Of Warcraft$`}},

	// smart-arse
	{"Some assembly required.", []string{`\\assembly$`}},
	{"Das.", []string{`\\Boot$`}},
	{"I'm something of a scientist myself.", []string{`\\Elixir$`, `\\Julia$`, `\\R$`, `\\ucm-windows$`, `\\Python$`, `\\erl-[\w\s\.]*$`}},
	{"Get REALLY good at programming!", []string{`\\(?i)Exercism$`}},
	{"Washbasins in churches.", []string{`\\Fonts$`}},
	{"An old man, liable to be rude and uncooperative, who only understands obscure jargon.", []string{`\\Git$`}},
	{"I love globs...", []string{`\\Globalization$`}},
	{"Whoogle? Never heard of them.", []string{`\\Google$`}},
	{"The best IDEs.", []string{`\\(?i)Jetbrains$`}},
	{"Old, and everyone is surprised to find it's still kicking around.", []string{`\\Internet Explorer$`}},
	{"Office software.", []string{`\\Microsoft Office$`}},
	{"H4X0R!", []string{`\\Microsoft Visual Studio$`}},
	{"R0XX0R", []string{`\\Razer$`}},
	{"The best DAW.", []string{`\\Renoise[\w\s\.]*$`}},
	{"Game or 🦀?", []string{`\\(?i)rust[\w\s]*$`}},
	{`As in "Wow, this is really what you decided to name the 32bit binary directory?"`, []string{`\\SysWOW64$`}},
	{"Xbox games, maybe? I mean, I'm just guessing...", []string{`\\XboxGames$`}},

	// useful info
	{"Apparently something to do with sd cards.", []string{`\\BayHubTech$`}},
	{"Games. Has its own app to add and remove them.", []string{`\\Epic Games$`}},
	{"Used by Windows to store contents of RAM during sleep or hibernate mode.", []string{`\\hiberfil.sys`}},
	{"Music production software.", []string{`\\(?i)native instruments$`}},
	{"JavaScript dependencies. Reinstalled by the package manager when deleted.", []string{`\\node_modules$`}},
	{"Graphics stuff.", []string{`\\(?i)nvidia[\w\s]*$`}},
	{"Virtual memory file used by Windows.", []string{`\\pagefile.sys`}},
	{"Database software.", []string{`\\(?i)PostgreSQL$`}},
	{"Programs might store data here 🙄", []string{`\\ProgramData$`}},
	{`Your apps and programs. Manage with "Settings/Apps/Installed apps" in Windows.`, []string{`\\Program Files$`}},
	{"Your apps and programs - pre 1986 (jk).", []string{`\\Program Files \(x86\)$`}},
	{"Audio stuff.", []string{`\\Realtek$`}},
	{"Also games.", []string{`\\Riot Games$`}},
	{"Your data, such as Documents and Downloads.", []string{`\\Users$`}},
	{"Often full of stuff you have downloaded, but don't need anymore.", []string{`\\Users\\[\w\s-]+\\Downloads$`, `\\home\\[\w\s-]+\\Downloads$`}},
	{"Games! Manage these with the Steam app.", []string{`\\Steam$`, `\\(?i)SteamLibrary$`}},
	{"In here...", []string{`\\Steam\\steamapps$`, `\\(?i)SteamLibrary\\steamapps$`}},
	{"Keep going...", []string{`\\Steam\\steamapps\\common$`, `\\(?i)SteamLibrary\\steamapps\\common$`}},
	{"This is probably your operating system. Use Windows utilities to manage contents.", []string{`\\Windows$`}},
	{"Don't even think about it.", []string{`\\Windows\\System32$`}},
	{"Do not touch.", []string{`\\Windows\\WinSxS$`, `\\System Volume Information$`}},
	{"Stores links to the files you have put into the Recycle Bin.", []string{`\\\$Recycle.Bin$`}},
	{"Used to diagnose problems with system reset or refresh.", []string{`\\\$SysReset$`}},
	{"System folder used if needed to roll back updates. Will be empty if system is healthy.", []string{`\\\$WinREAgent$`}},

	// linux, matched only where the separator is a slash
	{"Contains virtual files in linux, which will have misleading sizes.", []string{`^/proc$`}},
	{"Devices, represented by files, such as hard drives and software devices.", []string{`^/dev$`}},
	{"System-wide configuration files.", []string{`^/etc$`}},
	{"Per-user caches. Usually safe to clear.", []string{`^/home/[^/]+/\.cache$`}},
	{"System logs. Rotated, but can still grow large.", []string{`^/var/log$`}},
	{"Temporary files, often cleared on reboot.", []string{`^/tmp$`}},
}
