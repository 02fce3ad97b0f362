package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"PatentScraper/internal/domain"
)

// ReadFile opens path and reads its identifiers.
func ReadFile(path string) ([]domain.PatentNumber, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file %s: %w", path, err)
	}
	defer f.Close()

	numbers, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}
	return numbers, nil
}

// Read returns one patent number per line in file order. Lines are trimmed and
// blank lines are skipped.
func Read(r io.Reader) ([]domain.PatentNumber, error) {
	var numbers []domain.PatentNumber
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		numbers = append(numbers, domain.PatentNumber(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return numbers, nil
}
