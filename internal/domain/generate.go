package domain

import "math/rand/v2"

// Generator draws boards and checklists from a fixed prompt pool.
type Generator struct {
	pool []string
	rng  *rand.Rand
}

func NewGenerator(pool []string, rng *rand.Rand) *Generator {
	return &Generator{pool: pool, rng: rng}
}

func (g *Generator) Board() []Square {
	return GenerateBoard(g.pool, g.rng)
}

func (g *Generator) List() []Square {
	return GenerateList(g.pool, g.rng)
}

func (g *Generator) For(mode Mode) []Square {
	if mode == ModeScavenger {
		return g.List()
	}
	return g.Board()
}

func (g *Generator) Pool() []string {
	return append([]string(nil), g.pool...)
}

// GenerateBoard returns a 5x5 board with the free square at the centre.
// The pool must hold at least ItemsPerDraw distinct prompts.
func GenerateBoard(pool []string, rng *rand.Rand) []Square {
	drawn := drawPrompts(pool, rng)

	board := make([]Square, 0, BoardSize)
	for _, text := range drawn[:FreeSpaceID] {
		board = append(board, Square{ID: len(board), Text: text})
	}
	board = append(board, Square{ID: FreeSpaceID, Text: FreeSpaceText, IsMarked: true, IsFreeSpace: true})
	for _, text := range drawn[FreeSpaceID:] {
		board = append(board, Square{ID: len(board), Text: text})
	}

	return board
}

func GenerateList(pool []string, rng *rand.Rand) []Square {
	drawn := drawPrompts(pool, rng)

	list := make([]Square, 0, len(drawn))
	for i, text := range drawn {
		list = append(list, Square{ID: i, Text: text})
	}

	return list
}

func drawPrompts(pool []string, rng *rand.Rand) []string {
	prompts := uniquePrompts(pool)

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(prompts), func(i, j int) {
		prompts[i], prompts[j] = prompts[j], prompts[i]
	})

	return prompts[:ItemsPerDraw]
}

func uniquePrompts(pool []string) []string {
	prompts := make([]string, 0, len(pool))
	seen := make(map[string]struct{}, len(pool))
	for _, prompt := range pool {
		if _, ok := seen[prompt]; ok {
			continue
		}
		seen[prompt] = struct{}{}
		prompts = append(prompts, prompt)
	}

	return prompts
}

// CountDistinct reports how many distinct prompts a pool holds.
func CountDistinct(pool []string) int {
	return len(uniquePrompts(pool))
}
