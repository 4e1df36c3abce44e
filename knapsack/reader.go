package knapsack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadItems parses items from r, one per line:
//
//	<index> <size> <value>
//
// Fields are separated by any whitespace. Blank lines and lines starting
// with '#' are skipped. Values are not range-checked here; Solve does that.
//
// Errors:
//   - ErrMalformedInput wrapped with the 1-based line number.
//   - any read error from r.
func ReadItems(r io.Reader) ([]Item, error) {
	var (
		items  []Item
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		it, err := parseItem(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, lineNo, err)
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("knapsack: read items: %w", err)
	}

	return items, nil
}

// parseItem splits a single non-empty line into an Item.
func parseItem(line string) (Item, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Item{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return Item{}, fmt.Errorf("index %q: %w", fields[0], err)
	}
	size, err := strconv.Atoi(fields[1])
	if err != nil {
		return Item{}, fmt.Errorf("size %q: %w", fields[1], err)
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Item{}, fmt.Errorf("value %q: %w", fields[2], err)
	}

	return Item{Index: index, Size: size, Value: value}, nil
}
