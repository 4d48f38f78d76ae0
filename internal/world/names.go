package world

type nameTable struct {
	masculine []string
	feminine  []string
	family    []string
}

var nameTables = map[Species]nameTable{
	Human: {
		masculine: []string{
			"Albrecht", "Baltasar", "Benedick", "Caspar", "Dieterich", "Engelhart", "Felix",
			"Frantz", "Gerhart", "Hans", "Jacob", "Kilian", "Lorentz", "Ludwig", "Melchor",
			"Moritz", "Osswald", "Ruprecht", "Sigmund", "Ulrich", "Wendel", "Wolfgang",
		},
		feminine: []string{
			"Adelhayt", "Affra", "Agatha", "Angnes", "Barbara", "Brigita", "Cecilia", "Clara",
			"Dorothea", "Elsbeth", "Engel", "Eva", "Helena", "Irmel", "Kungund", "Lucia",
			"Madalena", "Margret", "Martha", "Otilia", "Sibilla", "Walpurg",
		},
		family: []string{
			"Amsel", "Becker", "Brenner", "Eberhart", "Falk", "Fischer", "Gerber", "Hafner",
			"Kessler", "Kramer", "Lang", "Mauer", "Richter", "Schmid", "Vogt", "Weber",
		},
	},
	Dwarf: {
		masculine: []string{"Adrik", "Baern", "Brottor", "Dain", "Eberk", "Harbek", "Orsik", "Rurik", "Thoradin", "Vondal"},
		feminine:  []string{"Amber", "Bardryn", "Dagnal", "Eldeth", "Gunnloda", "Helja", "Kathra", "Riswynn", "Torbera", "Vistra"},
		family:    []string{"Balderk", "Battlehammer", "Dankil", "Fireforge", "Gorunn", "Holderhek", "Ironfist", "Rumnaheim", "Strakeln", "Ungart"},
	},
	Elf: {
		masculine: []string{"Adran", "Aelar", "Berrian", "Carric", "Erevan", "Galinndan", "Hadarai", "Immeral", "Paelias", "Soveliss"},
		feminine:  []string{"Adrie", "Birel", "Caelynn", "Enna", "Keyleth", "Lia", "Meriele", "Naivara", "Quelenna", "Sariel"},
		family:    []string{"Amakiir", "Galanodel", "Holimion", "Ilphelkiir", "Liadon", "Meliamne", "Nailo", "Siannodel", "Xiloscient"},
	},
	HalfElf: {
		masculine: []string{"Aelar", "Corran", "Dorian", "Ivellios", "Mirth", "Quarion", "Riardon", "Thamior"},
		feminine:  []string{"Andraste", "Antinua", "Drusilia", "Felosial", "Ielenia", "Jelenneth", "Shava", "Thia"},
		family:    []string{"Brightwood", "Evenwood", "Goldpetal", "Moonwhisper", "Silverfrond", "Starflower"},
	},
	Gnome: {
		masculine: []string{"Alston", "Boddynock", "Brocc", "Burgell", "Dimble", "Eldon", "Fonkin", "Glim", "Orryn", "Zook"},
		feminine:  []string{"Bimpnottin", "Breena", "Caramip", "Carlin", "Ellyjobell", "Lilli", "Nissa", "Orla", "Roywyn", "Zanna"},
		family:    []string{"Beren", "Daergel", "Folkor", "Garrick", "Nackle", "Murnig", "Ningel", "Raulnor", "Scheppen", "Turen"},
	},
	Halfling: {
		masculine: []string{"Alton", "Ander", "Cade", "Corrin", "Eldon", "Errich", "Finnan", "Garret", "Lyle", "Milo", "Osborn", "Roscoe"},
		feminine:  []string{"Andry", "Bree", "Callie", "Cora", "Euphemia", "Jillian", "Kithri", "Lavinia", "Merla", "Nedda", "Paela", "Seraphina"},
		family:    []string{"Brushgather", "Goodbarrel", "Greenbottle", "Highhill", "Hilltopple", "Leagallow", "Tealeaf", "Thorngage", "Tosscobble", "Underbough"},
	},
	HalfOrc: {
		masculine: []string{"Dench", "Feng", "Gell", "Henk", "Holg", "Imsh", "Keth", "Krusk", "Ront", "Shump", "Thokk"},
		feminine:  []string{"Baggi", "Emen", "Engong", "Kansif", "Myev", "Neega", "Ovak", "Ownka", "Shautha", "Vola", "Volen"},
		family:    []string{"Ashtooth", "Bonecrusher", "Grimfang", "Ironhide", "Skullsplitter", "Stonejaw"},
	},
	Dragonborn: {
		masculine: []string{"Arjhan", "Balasar", "Bharash", "Donaar", "Ghesh", "Heskan", "Kriv", "Medrash", "Nadarr", "Torinn"},
		feminine:  []string{"Akra", "Biri", "Daar", "Farideh", "Harann", "Havilar", "Jheri", "Kava", "Mishann", "Sora"},
		family:    []string{"Clethtinthiallor", "Daardendrian", "Delmirev", "Drachedandion", "Fenkenkabradon", "Kepeshkmolik", "Kerrhylon", "Kimbatuul"},
	},
	Tiefling: {
		masculine: []string{"Akmenos", "Amnon", "Barakas", "Damakos", "Ekemon", "Iados", "Kairon", "Leucis", "Melech", "Mordai", "Skamos"},
		feminine:  []string{"Akta", "Anakis", "Bryseis", "Criella", "Damaia", "Ea", "Kallista", "Lerissa", "Makaria", "Nemeia", "Orianna"},
		family:    []string{"Art", "Carrion", "Chant", "Despair", "Hope", "Ideal", "Poetry", "Quest", "Sorrow", "Torment"},
	},
}

var (
	placeAdjectives = []string{
		"Black", "Broken", "Copper", "Crooked", "Drunken", "Gilded", "Golden", "Green", "Hidden",
		"Howling", "Laughing", "Lonely", "Prancing", "Red", "Rusty", "Silver", "Sleeping", "Wandering",
	}
	tavernNouns = []string{
		"Anchor", "Badger", "Barrel", "Boar", "Dragon", "Flagon", "Fox", "Griffin", "Hart", "Kettle",
		"Lantern", "Mare", "Owl", "Pony", "Raven", "Stag", "Tankard", "Wyvern",
	}
	religiousPatrons = []string{
		"Dawn", "Eternal Flame", "Harvest", "Hidden Star", "Morning Lord", "Silent Watcher",
		"Storm", "Triad", "Twin Moons", "Wanderer",
	}
	settlementPrefixes = []string{
		"Ash", "Black", "Bright", "Cold", "Elm", "Green", "High", "Iron", "Oak", "Raven", "Red",
		"Salt", "Stone", "Thorn", "Wolf",
	}
	settlementSuffixes = []string{
		"bridge", "brook", "burg", "dale", "ford", "gate", "haven", "hollow", "mere", "moor",
		"stead", "vale", "wick",
	}
)
