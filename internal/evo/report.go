package evo

import (
	"bufio"
	"fmt"
	"io"

	"numevo/internal/numeral"
)

// WriteReport prints the stop line, one line per individual with its
// components separated by single spaces, and a closing blank line.
func WriteReport[E any, N numeral.Numeral](w io.Writer, shape numeral.Shape[E, N], generation int, population []E) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Algorithm stopped after %d generations.\n", generation)
	for _, individual := range population {
		bw.WriteString(numeral.Format(shape, individual))
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
