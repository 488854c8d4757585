package credvault

// wordlist is the embedded passphrase dictionary: 256 short, common,
// unambiguous English words. The size is a power of two so a single random
// byte indexes it uniformly, giving exactly 8 bits of entropy per word.
var wordlist = [256]string{
	"acorn", "amber", "anchor", "apple", "april", "arrow", "aspen", "atlas",
	"autumn", "badge", "bamboo", "banjo", "barley", "basil", "beacon", "berry",
	"birch", "bison", "blaze", "bloom", "bolt", "border", "bounce", "brave",
	"breeze", "brick", "bridge", "bright", "brook", "bucket", "butter", "cabin",
	"cactus", "camel", "candle", "canoe", "canyon", "carbon", "cargo", "castle",
	"cedar", "cello", "chalk", "cherry", "chess", "chime", "cider", "circle",
	"citrus", "clay", "cliff", "clover", "cobalt", "coffee", "comet", "copper",
	"coral", "cotton", "cougar", "cove", "crane", "crater", "cricket", "crystal",
	"cycle", "daisy", "dawn", "delta", "denim", "desert", "dewdrop", "dome",
	"donkey", "dragon", "drift", "drum", "dune", "eagle", "early", "earth",
	"echo", "ember", "engine", "falcon", "fable", "feather", "fern", "field",
	"finch", "fjord", "flame", "flint", "flora", "flute", "forest", "fossil",
	"fox", "frost", "galaxy", "garden", "garnet", "gecko", "geyser", "ginger",
	"glacier", "glade", "globe", "goose", "gorge", "granite", "grape", "gravel",
	"grove", "guitar", "gull", "harbor", "harvest", "hawk", "hazel", "heron",
	"hickory", "hill", "honey", "horizon", "humble", "icicle", "igloo", "indigo",
	"iris", "island", "ivory", "ivy", "jade", "jaguar", "jasper", "jungle",
	"juniper", "kayak", "kelp", "kettle", "kiwi", "koala", "lagoon", "lake",
	"lantern", "larch", "laurel", "lava", "leaf", "lemon", "lilac", "lily",
	"linen", "lion", "lizard", "llama", "lotus", "lunar", "lynx", "magnet",
	"mango", "maple", "marble", "meadow", "melon", "mesa", "meteor", "mint",
	"mirror", "mocha", "monsoon", "moose", "morning", "mosaic", "moss", "mountain",
	"mulberry", "mustang", "nectar", "nest", "night", "north", "nutmeg", "oak",
	"oasis", "ocean", "olive", "onyx", "opal", "orange", "orbit", "orchid",
	"osprey", "otter", "owl", "oyster", "panda", "paper", "parrot", "peach",
	"pebble", "penguin", "peony", "pepper", "petal", "pigeon", "pine", "planet",
	"plum", "pond", "poplar", "poppy", "prairie", "prism", "pumpkin", "quail",
	"quartz", "quill", "rabbit", "raccoon", "rain", "raven", "reef", "ridge",
	"river", "robin", "rocket", "rose", "rowan", "ruby", "saffron", "sage",
	"salmon", "sand", "sapphire", "seal", "shadow", "shore", "sierra", "silver",
	"sparrow", "spring", "spruce", "squash", "stone", "storm", "summer", "sunset",
	"swan", "thistle", "thunder", "tiger", "timber", "topaz", "tulip", "willow",
}
