package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jswint/gridlock"
	"github.com/jswint/gridlock/internal/board"
)

// writeHTML creates a printable HTML file with puzzles, one per page,
// each followed by its solution.
func writeHTML(filename string, puzzles []*gridlock.Puzzle) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Gridlock Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .page {
            page-break-after: always;
            background-color: white;
            padding: 40px;
            margin-bottom: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .page:last-child {
            page-break-after: auto;
        }
        h1 {
            color: #333;
            margin-bottom: 30px;
            text-align: center;
        }
        h2 {
            color: #666;
            margin-top: 20px;
            margin-bottom: 15px;
            font-size: 1.2em;
        }
        .puzzle-grid {
            display: inline-block;
            border: 3px solid #000;
            margin: 20px auto;
            font-family: 'Courier New', monospace;
            font-size: 24px;
            line-height: 1.5;
        }
        .puzzle-grid table {
            border-collapse: collapse;
            margin: 0 auto;
        }
        .puzzle-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            padding: 0;
        }
        .puzzle-grid td.empty {
            color: #ccc;
        }
        .puzzle-grid td.box-bottom {
            border-bottom: 2px solid #000;
        }
        .puzzle-grid td.box-right {
            border-right: 2px solid #000;
        }
        @media print {
            body {
                background-color: white;
            }
            .page {
                margin-bottom: 0;
                box-shadow: none;
            }
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i, p := range puzzles {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Puzzle #%d (%dx%d)</h1>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, p.Size, p.Size, gridToHTML(p.Clues), gridToHTML(p.Solution))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(file, `</body>
</html>
`)
	return err
}

// gridToHTML converts a grid to an HTML table representation.
// Box borders are classed per cell since the box dimensions depend on
// the grid size (and are not square for 6x6).
func gridToHTML(g gridlock.Grid) string {
	size := len(g)
	shape, err := board.ShapeOf(size)
	if err != nil {
		return fmt.Sprintf("<!-- %v -->", err)
	}

	var sb strings.Builder
	sb.WriteString("<div class=\"puzzle-grid\"><table>")

	for row := 0; row < size; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < size; col++ {
			classes := make([]string, 0, 3)
			if g[row][col] == 0 {
				classes = append(classes, "empty")
			}
			if (row+1)%shape.BoxRows == 0 && row != size-1 {
				classes = append(classes, "box-bottom")
			}
			if (col+1)%shape.BoxCols == 0 && col != size-1 {
				classes = append(classes, "box-right")
			}

			content := "&middot;"
			if v := g[row][col]; v != 0 {
				content = fmt.Sprintf("%d", v)
			}
			sb.WriteString(fmt.Sprintf("<td class=\"%s\">%s</td>", strings.Join(classes, " "), content))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
