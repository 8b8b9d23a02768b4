package domain

// DefaultPrompts is the built-in prompt pool.
var DefaultPrompts = []string{
	"Has traveled to another continent this year",
	"Speaks more than two languages",
	"Has run a marathon",
	"Plays a musical instrument",
	"Was born in the same month as you",
	"Has a pet that is not a cat or a dog",
	"Has met a celebrity",
	"Can juggle",
	"Has lived in more than three cities",
	"Is left-handed",
	"Has been skydiving",
	"Knows how to knit or crochet",
	"Has a twin",
	"Grew up on a farm",
	"Has appeared on TV or radio",
	"Can solve a Rubik's cube",
	"Has written a book or a blog",
	"Drinks no coffee at all",
	"Has a tattoo with a story",
	"Has gone camping in the last month",
	"Can cook a dish from scratch without a recipe",
	"Has broken a bone",
	"Loves karaoke",
	"Has never seen a Star Wars movie",
	"Has volunteered in the past year",
	"Has the same favorite color as you",
	"Works in a field they did not study",
	"Has a hidden talent they will show you",
	"Is the oldest sibling",
	"Has planted a garden",
	"Has been to a music festival",
	"Collects something unusual",
	"Has changed careers",
	"Can name every planet in order",
	"Learned to code as a kid",
	"Prefers sunrise to sunset",
}
