package world

import "math/rand/v2"

type GenerateOptions struct {
	MinPits int
	MaxPits int
}

func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{MinPits: 3, MaxPits: 6}
}

// Generate picks a random layout: the Wumpus and gold on distinct cells away
// from the start, then between MinPits and MaxPits pits on the cells left
// over. The result always passes Initialize.
func Generate(rng *rand.Rand, size int, opts GenerateOptions) (Placements, error) {
	env, err := NewEnvironment(size)
	if err != nil {
		return Placements{}, err
	}
	if opts.MinPits < 0 {
		opts.MinPits = 0
	}
	if opts.MaxPits < opts.MinPits {
		opts.MaxPits = opts.MinPits
	}

	free := make([]Coord, 0, size*size-1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := Coord{X: x, Y: y}
			if c != env.Start() {
				free = append(free, c)
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	if len(free) < 2 {
		return Placements{}, &ConfigError{Err: ErrInvalidSize, Detail: "grid too small for wumpus and gold"}
	}
	wumpus, gold := free[0], free[1]
	free = free[2:]

	pits := opts.MinPits
	if opts.MaxPits > opts.MinPits {
		pits += rng.IntN(opts.MaxPits - opts.MinPits + 1)
	}
	if pits > len(free) {
		pits = len(free)
	}

	return Placements{
		Size:   size,
		Wumpus: &wumpus,
		Gold:   &gold,
		Pits:   append([]Coord(nil), free[:pits]...),
	}, nil
}
