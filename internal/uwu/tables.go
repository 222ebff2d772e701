package uwu

var words = map[string]string{
	"small":  "smol",
	"cute":   "kawaii~",
	"fluff":  "floof",
	"love":   "luv",
	"stupid": "baka",
	"what":   "nani",
	"meow":   "nya~",
}

var faces = []string{
	"OwO",
	"UwU",
	">w<",
	"^w^",
	"owo",
	"uwu",
	";;w;;",
	"(・`ω´・)",
	"(* ^ ω ^)",
	"(⌒ω⌒)",
	"ヽ(*・ω・)ﾉ",
	"(o´∀`o)",
	"(o･ω･o)",
	"＼(＾▽＾)／",
}

var actions = []string{
	"*blushes*",
	"*whispers to self*",
	"*cries*",
	"*screams*",
	"*sweats*",
	"*runs away*",
	"*screeches*",
	"*walks away*",
	"*looks at you*",
	"*huggles tightly*",
	"*boops your nose*",
}

var exclamations = []string{
	"!?",
	"?!!",
	"?!?1",
	"!!11",
	"?!?!",
}
