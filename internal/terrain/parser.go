package terrain

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrEmptyGrid      = errors.New("grid has no cells")
	ErrInvalidCell    = errors.New("invalid cell character")
	ErrRaggedRows     = errors.New("rows differ in length")
	ErrDuplicateStart = errors.New("more than one start cell")
	ErrDuplicateEnd   = errors.New("more than one end cell")
	ErrMissingStart   = errors.New("no start cell")
	ErrMissingEnd     = errors.New("no end cell")
	ErrStartIsEnd     = errors.New("start and end are the same cell")
)

// Rows may only contain heights a-z and the S/E markers; anything else
// fails in the lexer.
var gridLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Row", Pattern: `[a-zSE]+`},
	{Name: "EOL", Pattern: `\r?\n`},
})

type gridFile struct {
	Rows []*gridRow `parser:"EOL* @@*"`
}

type gridRow struct {
	Pos   lexer.Position
	Cells string `parser:"@Row EOL*"`
}

var gridParser = participle.MustBuild[gridFile](participle.Lexer(gridLexer))

// Parse reads a height map: one line per row, 'a'..'z' for heights 0..25,
// 'S' for the start (height 0) and 'E' for the end (height 25).
func Parse(name, data string) (*Grid, error) {
	file, err := gridParser.ParseString(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCell, err)
	}
	if len(file.Rows) == 0 {
		return nil, ErrEmptyGrid
	}

	var start, end *Coord
	rows := make([][]int, 0, len(file.Rows))
	for y, row := range file.Rows {
		heights := make([]int, len(row.Cells))
		for x, ch := range []byte(row.Cells) {
			c := Coord{X: x, Y: y}
			switch ch {
			case 'S':
				if start != nil {
					return nil, fmt.Errorf("%w at %s:%d:%d", ErrDuplicateStart, name, row.Pos.Line, x+1)
				}
				start = &c
				heights[x] = 0
			case 'E':
				if end != nil {
					return nil, fmt.Errorf("%w at %s:%d:%d", ErrDuplicateEnd, name, row.Pos.Line, x+1)
				}
				end = &c
				heights[x] = MaxHeight
			default:
				heights[x] = int(ch - 'a')
			}
		}
		rows = append(rows, heights)
	}
	if start == nil {
		return nil, ErrMissingStart
	}
	if end == nil {
		return nil, ErrMissingEnd
	}
	return NewGrid(rows, *start, *end)
}

// LoadGrid reads and parses a grid file.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := Parse(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return g, nil
}
