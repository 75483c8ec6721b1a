// Package scenario contains the line-protocol drivers, one per dispatch
// discipline. Each driver is a contract.Worker reading from an injected
// LineSource and writing to an injected LineSink; stdio is never ambient.
package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dispatch-lab/contract"
	"dispatch-lab/errors"
)

// ScannerSource adapts an io.Reader into a LineSource.
type ScannerSource struct {
	scanner *bufio.Scanner
}

func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{scanner: bufio.NewScanner(r)}
}

func (s *ScannerSource) NextLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// readCount reads one line holding a single non-negative integer.
func readCount(source contract.LineSource) (int, error) {
	line, err := source.NextLine()
	if err != nil {
		return 0, fmt.Errorf("%w: missing count", errors.ErrMalformedInput)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a count", errors.ErrMalformedInput, line)
	}
	return n, nil
}
