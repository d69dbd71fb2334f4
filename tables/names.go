package tables

// These tables are in their own file because they are large.
//
// IDs follow the base game; expanded-hack additions past the transcribed
// range fall through Safe_lookup and display as "Unknown (id)".

var Species = map[int]string{
	1: "Bulbasaur", 2: "Ivysaur", 3: "Venusaur",
	4: "Charmander", 5: "Charmeleon", 6: "Charizard",
	7: "Squirtle", 8: "Wartortle", 9: "Blastoise",
	10: "Caterpie", 11: "Metapod", 12: "Butterfree",
	13: "Weedle", 14: "Kakuna", 15: "Beedrill",
	16: "Pidgey", 17: "Pidgeotto", 18: "Pidgeot",
	19: "Rattata", 20: "Raticate",
	21: "Spearow", 22: "Fearow",
	23: "Ekans", 24: "Arbok",
	25: "Pikachu", 26: "Raichu",
	27: "Sandshrew", 28: "Sandslash",
	29: "Nidoran♀", 30: "Nidorina", 31: "Nidoqueen",
	32: "Nidoran♂", 33: "Nidorino", 34: "Nidoking",
	35: "Clefairy", 36: "Clefable",
	37: "Vulpix", 38: "Ninetales",
	39: "Jigglypuff", 40: "Wigglytuff",
	41: "Zubat", 42: "Golbat",
	43: "Oddish", 44: "Gloom", 45: "Vileplume",
	46: "Paras", 47: "Parasect",
	48: "Venonat", 49: "Venomoth",
	50: "Diglett", 51: "Dugtrio",
	52: "Meowth", 53: "Persian",
	54: "Psyduck", 55: "Golduck",
	56: "Mankey", 57: "Primeape",
	58: "Growlithe", 59: "Arcanine",
	60: "Poliwag", 61: "Poliwhirl", 62: "Poliwrath",
	63: "Abra", 64: "Kadabra", 65: "Alakazam",
	66: "Machop", 67: "Machoke", 68: "Machamp",
	69: "Bellsprout", 70: "Weepinbell", 71: "Victreebel",
	72: "Tentacool", 73: "Tentacruel",
	74: "Geodude", 75: "Graveler", 76: "Golem",
	77: "Ponyta", 78: "Rapidash",
	79: "Slowpoke", 80: "Slowbro",
	81: "Magnemite", 82: "Magneton",
	83: "Farfetch'd",
	84: "Doduo", 85: "Dodrio",
	86: "Seel", 87: "Dewgong",
	88: "Grimer", 89: "Muk",
	90: "Shellder", 91: "Cloyster",
	92: "Gastly", 93: "Haunter", 94: "Gengar",
	95: "Onix",
	96: "Drowzee", 97: "Hypno",
	98: "Krabby", 99: "Kingler",
	100: "Voltorb", 101: "Electrode",
	102: "Exeggcute", 103: "Exeggutor",
	104: "Cubone", 105: "Marowak",
	106: "Hitmonlee", 107: "Hitmonchan",
	108: "Lickitung",
	109: "Koffing", 110: "Weezing",
	111: "Rhyhorn", 112: "Rhydon",
	113: "Chansey",
	114: "Tangela",
	115: "Kangaskhan",
	116: "Horsea", 117: "Seadra",
	118: "Goldeen", 119: "Seaking",
	120: "Staryu", 121: "Starmie",
	122: "Mr. Mime",
	123: "Scyther",
	124: "Jynx",
	125: "Electabuzz",
	126: "Magmar",
	127: "Pinsir",
	128: "Tauros",
	129: "Magikarp", 130: "Gyarados",
	131: "Lapras",
	132: "Ditto",
	133: "Eevee", 134: "Vaporeon", 135: "Jolteon", 136: "Flareon",
	137: "Porygon",
	138: "Omanyte", 139: "Omastar",
	140: "Kabuto", 141: "Kabutops",
	142: "Aerodactyl",
	143: "Snorlax",
	144: "Articuno", 145: "Zapdos", 146: "Moltres",
	147: "Dratini", 148: "Dragonair", 149: "Dragonite",
	150: "Mewtwo", 151: "Mew",
}

var Moves = map[int]string{
	1: "Pound", 2: "Karate Chop", 3: "Double Slap", 4: "Comet Punch",
	5: "Mega Punch", 6: "Pay Day", 7: "Fire Punch", 8: "Ice Punch",
	9: "Thunder Punch", 10: "Scratch", 11: "Vice Grip", 12: "Guillotine",
	13: "Razor Wind", 14: "Swords Dance", 15: "Cut", 16: "Gust",
	17: "Wing Attack", 18: "Whirlwind", 19: "Fly", 20: "Bind",
	21: "Slam", 22: "Vine Whip", 23: "Stomp", 24: "Double Kick",
	25: "Mega Kick", 26: "Jump Kick", 27: "Rolling Kick", 28: "Sand Attack",
	29: "Headbutt", 30: "Horn Attack", 31: "Fury Attack", 32: "Horn Drill",
	33: "Tackle", 34: "Body Slam", 35: "Wrap", 36: "Take Down",
	37: "Thrash", 38: "Double-Edge", 39: "Tail Whip", 40: "Poison Sting",
	41: "Twineedle", 42: "Pin Missile", 43: "Leer", 44: "Bite",
	45: "Growl", 46: "Roar", 47: "Sing", 48: "Supersonic",
	49: "Sonic Boom", 50: "Disable", 51: "Acid", 52: "Ember",
	53: "Flamethrower", 54: "Mist", 55: "Water Gun", 56: "Hydro Pump",
	57: "Surf", 58: "Ice Beam", 59: "Blizzard", 60: "Psybeam",
	61: "Bubble Beam", 62: "Aurora Beam", 63: "Hyper Beam", 64: "Peck",
	65: "Drill Peck", 66: "Submission", 67: "Low Kick", 68: "Counter",
	69: "Seismic Toss", 70: "Strength", 71: "Absorb", 72: "Mega Drain",
	73: "Leech Seed", 74: "Growth", 75: "Razor Leaf", 76: "Solar Beam",
	77: "Poison Powder", 78: "Stun Spore", 79: "Sleep Powder", 80: "Petal Dance",
	81: "String Shot", 82: "Dragon Rage", 83: "Fire Spin", 84: "Thunder Shock",
	85: "Thunderbolt", 86: "Thunder Wave", 87: "Thunder", 88: "Rock Throw",
	89: "Earthquake", 90: "Fissure", 91: "Dig", 92: "Toxic",
	93: "Confusion", 94: "Psychic", 95: "Hypnosis", 96: "Meditate",
	97: "Agility", 98: "Quick Attack", 99: "Rage", 100: "Teleport",
	101: "Night Shade", 102: "Mimic", 103: "Screech", 104: "Double Team",
	105: "Recover", 106: "Harden", 107: "Minimize", 108: "Smokescreen",
	109: "Confuse Ray", 110: "Withdraw", 111: "Defense Curl", 112: "Barrier",
	113: "Light Screen", 114: "Haze", 115: "Reflect", 116: "Focus Energy",
	117: "Bide", 118: "Metronome", 119: "Mirror Move", 120: "Self-Destruct",
	121: "Egg Bomb", 122: "Lick", 123: "Smog", 124: "Sludge",
	125: "Bone Club", 126: "Fire Blast", 127: "Waterfall", 128: "Clamp",
	129: "Swift", 130: "Skull Bash", 131: "Spike Cannon", 132: "Constrict",
	133: "Amnesia", 134: "Kinesis", 135: "Soft-Boiled", 136: "High Jump Kick",
	137: "Glare", 138: "Dream Eater", 139: "Poison Gas", 140: "Barrage",
	141: "Leech Life", 142: "Lovely Kiss", 143: "Sky Attack", 144: "Transform",
	145: "Bubble", 146: "Dizzy Punch", 147: "Spore", 148: "Flash",
	149: "Psywave", 150: "Splash", 151: "Acid Armor", 152: "Crabhammer",
	153: "Explosion", 154: "Fury Swipes", 155: "Bonemerang", 156: "Rest",
	157: "Rock Slide", 158: "Hyper Fang", 159: "Sharpen", 160: "Conversion",
	161: "Tri Attack", 162: "Super Fang", 163: "Slash", 164: "Substitute",
	165: "Struggle",
}

var Abilities = map[int]string{
	1: "Stench", 2: "Drizzle", 3: "Speed Boost", 4: "Battle Armor",
	5: "Sturdy", 6: "Damp", 7: "Limber", 8: "Sand Veil",
	9: "Static", 10: "Volt Absorb", 11: "Water Absorb", 12: "Oblivious",
	13: "Cloud Nine", 14: "Compound Eyes", 15: "Insomnia", 16: "Color Change",
	17: "Immunity", 18: "Flash Fire", 19: "Shield Dust", 20: "Own Tempo",
	21: "Suction Cups", 22: "Intimidate", 23: "Shadow Tag", 24: "Rough Skin",
	25: "Wonder Guard", 26: "Levitate", 27: "Effect Spore", 28: "Synchronize",
	29: "Clear Body", 30: "Natural Cure", 31: "Lightning Rod", 32: "Serene Grace",
	33: "Swift Swim", 34: "Chlorophyll", 35: "Illuminate", 36: "Trace",
	37: "Huge Power", 38: "Poison Point", 39: "Inner Focus", 40: "Magma Armor",
	41: "Water Veil", 42: "Magnet Pull", 43: "Soundproof", 44: "Rain Dish",
	45: "Sand Stream", 46: "Pressure", 47: "Thick Fat", 48: "Early Bird",
	49: "Flame Body", 50: "Run Away", 51: "Keen Eye", 52: "Hyper Cutter",
	53: "Pickup", 54: "Truant", 55: "Hustle", 56: "Cute Charm",
	57: "Plus", 58: "Minus", 59: "Forecast", 60: "Sticky Hold",
	61: "Shed Skin", 62: "Guts", 63: "Marvel Scale", 64: "Liquid Ooze",
	65: "Overgrow", 66: "Blaze", 67: "Torrent", 68: "Swarm",
	69: "Rock Head", 70: "Drought", 71: "Arena Trap", 72: "Vital Spirit",
	73: "White Smoke", 74: "Pure Power", 75: "Shell Armor", 76: "Air Lock",
	// expanded-hack additions that the ability table above references
	77: "Tangled Feet", 94: "Solar Power",
}

var Items = map[int]string{
	1: "Master Ball", 2: "Ultra Ball", 3: "Great Ball", 4: "Poke Ball",
	5: "Safari Ball", 6: "Net Ball", 7: "Dive Ball", 8: "Nest Ball",
	9: "Repeat Ball", 10: "Timer Ball", 11: "Luxury Ball", 12: "Premier Ball",
	13: "Potion", 14: "Antidote", 15: "Burn Heal", 16: "Ice Heal",
	17: "Awakening", 18: "Paralyze Heal", 19: "Full Restore", 20: "Max Potion",
	21: "Hyper Potion", 22: "Super Potion", 23: "Full Heal", 24: "Revive",
	25: "Max Revive", 26: "Fresh Water", 27: "Soda Pop", 28: "Lemonade",
	29: "Moomoo Milk",
	63: "HP Up", 64: "Protein", 65: "Iron", 66: "Carbos",
	67: "Calcium", 68: "Rare Candy", 69: "PP Up", 70: "Zinc", 71: "PP Max",
	133: "Cheri Berry", 134: "Chesto Berry", 135: "Pecha Berry",
	136: "Rawst Berry", 137: "Aspear Berry", 138: "Leppa Berry",
	139: "Oran Berry", 140: "Persim Berry", 141: "Lum Berry", 142: "Sitrus Berry",
	179: "BrightPowder", 180: "White Herb", 181: "Macho Brace", 182: "Exp. Share",
	183: "Quick Claw", 184: "Soothe Bell", 185: "Mental Herb", 186: "Choice Band",
	187: "King's Rock", 188: "Silver Powder", 189: "Amulet Coin", 190: "Cleanse Tag",
	191: "Soul Dew", 192: "Deep Sea Tooth", 193: "Deep Sea Scale", 194: "Smoke Ball",
	195: "Everstone", 196: "Focus Band", 197: "Lucky Egg", 198: "Scope Lens",
	199: "Metal Coat", 200: "Leftovers", 201: "Dragon Scale", 202: "Light Ball",
	203: "Soft Sand", 204: "Hard Stone", 205: "Miracle Seed", 206: "Black Glasses",
	207: "Black Belt", 208: "Magnet", 209: "Mystic Water", 210: "Sharp Beak",
	211: "Poison Barb", 212: "Never-Melt Ice", 213: "Spell Tag", 214: "Twisted Spoon",
	215: "Charcoal", 216: "Dragon Fang", 217: "Silk Scarf", 218: "Up-Grade",
	219: "Shell Bell", 220: "Sea Incense", 221: "Lax Incense", 222: "Lucky Punch",
	223: "Metal Powder", 224: "Thick Club", 225: "Stick",
}
