package gagyebu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The ledger file holds one record per line, five tab-separated fields:
//
//	date(YYYY-MM-DD) \t kind(E|I) \t amount \t category codes \t payment
//
// Every line ends with a newline. Any line with a different field count is
// fatal corruption: upstream integrity checking should have caught it, and
// the engine deliberately refuses to guess at a repair.

const ledgerFieldCount = 5

// DecodeLedger reads a whole ledger stream into memory. Blank lines are
// skipped; ordinals are assigned from line order; the result is sorted by
// date descending, stable. Malformed lines surface as *CorruptError.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := decodeRecord(line)
		if err != nil {
			return nil, &CorruptError{Line: lineNo, Err: err}
		}
		rec.seq = ledger.nextSeq
		ledger.nextSeq++
		ledger.records = append(ledger.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}

	ledger.sortDesc()
	return ledger, nil
}

func decodeRecord(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != ledgerFieldCount {
		return Record{}, fmt.Errorf("want %d tab-separated fields, got %d", ledgerFieldCount, len(fields))
	}

	d, err := ParseDate(fields[0])
	if err != nil {
		return Record{}, err
	}
	kind, err := ParseKind(fields[1])
	if err != nil {
		return Record{}, err
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return Record{}, err
	}

	// The category field may hold several space-separated codes, or a legacy
	// standard name written before categories were coded. The payment field
	// is stored as a resolved standard name and taken as-is.
	return Record{
		Date:       d,
		Kind:       kind,
		Amount:     amount,
		Categories: ParseCategorySet(fields[3]),
		Payment:    fields[4],
	}, nil
}

// EncodeRecord writes a single record as one tab-separated line, newline
// terminated.
func EncodeRecord(w io.Writer, rec Record) error {
	line := strings.Join([]string{
		rec.Date.String(),
		rec.Kind.String(),
		strconv.FormatInt(rec.Amount, 10),
		rec.Categories.String(),
		rec.Payment,
	}, "\t")
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger persists the whole ledger to w in its canonical form:
// display order (date descending, stable), one line per record, trailing
// newline on every line.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	bw := bufio.NewWriter(w)
	for _, rec := range ledger.records {
		if err := EncodeRecord(bw, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
