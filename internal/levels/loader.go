// Package levels reads the snaze level text format and turns it into
// grids ready for simulation. This package depends on maze but maze
// does not depend on levels.
//
// A level file is a sequence of blocks. Each block starts with a header
// line of two naturals, "<rows> <cols>", both between 1 and 100,
// followed by exactly that many maze rows. A maze must contain exactly
// one spawn marker '&'; blocks that violate that are skipped rather
// than aborting the whole file, matching the classic snaze behavior.
package levels

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pmelo/snaze/internal/maze"
)

// MaxDimension bounds level rows and columns.
const MaxDimension = 100

// Load parses every level block from r. The rng seeds each grid's
// initial food placement. An error is returned for malformed headers
// and when no valid level survives filtering.
func Load(r io.Reader, rng *rand.Rand) ([]*maze.Grid, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("levels: reading input: %w", err)
	}

	var grids []*maze.Grid
	for i := 0; i < len(lines); i++ {
		header := strings.TrimSpace(lines[i])
		if header == "" {
			continue
		}

		rows, cols, err := parseHeader(header)
		if err != nil {
			return nil, err
		}
		if i+rows > len(lines)-1 {
			return nil, fmt.Errorf("levels: header %q promises %d rows but the file ends early", header, rows)
		}

		block := lines[i+1 : i+1+rows]
		i += rows

		if countSpawns(block) != 1 {
			continue // Skip mazes without exactly one spawn marker.
		}

		g, err := maze.NewGrid(block, cols, rng)
		if err != nil {
			continue
		}
		grids = append(grids, g)
	}

	if len(grids) == 0 {
		return nil, fmt.Errorf("levels: no valid levels were loaded")
	}
	return grids, nil
}

// LoadFile loads a level file from disk.
func LoadFile(path string, rng *rand.Rand) ([]*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, rng)
}

// parseHeader validates a "<rows> <cols>" dimension line.
func parseHeader(line string) (rows, cols int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("levels: expected two natural numbers for level dimensions, got %q", line)
	}

	rows, err = parseNatural(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("levels: bad row count in %q: %w", line, err)
	}
	cols, err = parseNatural(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("levels: bad column count in %q: %w", line, err)
	}

	if rows < 1 || cols < 1 || rows > MaxDimension || cols > MaxDimension {
		return 0, 0, fmt.Errorf("levels: dimensions %dx%d outside 1..%d", rows, cols, MaxDimension)
	}
	return rows, cols, nil
}

// parseNatural accepts only unsigned decimal digits.
func parseNatural(s string) (int, error) {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%q is not a natural number", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// countSpawns counts '&' markers across a maze block.
func countSpawns(rows []string) int {
	n := 0
	for _, row := range rows {
		n += strings.Count(row, "&")
	}
	return n
}
