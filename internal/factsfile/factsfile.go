// Package factsfile parses the trace-decoder annotation format: one record
// per line, "HHHH label ; comment", consulted when an instruction address
// has no user-defined assembler symbol (§6).
package factsfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fact is one annotated address.
type Fact struct {
	Label   string
	Comment string
}

// Table maps addresses to facts, looked up by the trace formatter.
type Table map[uint16]Fact

// Parse reads facts records from r. Blank lines and lines beginning with
// '#' or ';' are ignored. A malformed line is skipped with its line number
// reported in the returned error rather than aborting the whole read, so a
// single typo doesn't take out every other annotation in the file.
func Parse(r io.Reader) (Table, error) {
	tbl := make(Table)
	sc := bufio.NewScanner(r)
	var errs []string
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		addr, err := strconv.ParseUint(fields[0], 16, 16)
		if err != nil {
			errs = append(errs, fmt.Sprintf("line %d: bad address %q", lineNo, fields[0]))
			continue
		}
		rest := ""
		if len(fields) == 2 {
			rest = strings.TrimSpace(fields[1])
		}
		label, comment := rest, ""
		if i := strings.Index(rest, ";"); i >= 0 {
			label = strings.TrimSpace(rest[:i])
			comment = strings.TrimSpace(rest[i+1:])
		}
		tbl[uint16(addr)] = Fact{Label: label, Comment: comment}
	}
	if err := sc.Err(); err != nil {
		return tbl, err
	}
	if len(errs) > 0 {
		return tbl, fmt.Errorf("factsfile: %s", strings.Join(errs, "; "))
	}
	return tbl, nil
}

// Lookup returns the fact at addr, if any.
func (t Table) Lookup(addr uint16) (Fact, bool) {
	f, ok := t[addr]
	return f, ok
}
