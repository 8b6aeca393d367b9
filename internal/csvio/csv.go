// Package csvio implements the CSV interchange format: semicolon-delimited
// rows with a TYPE discriminator column covering sessions and both day
// sets. Dates are European (DD.MM.YYYY) on the wire and ISO (YYYY-MM-DD)
// internally. Field quoting follows RFC 4180 with doubled quotes, which
// encoding/csv produces and consumes natively.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"stehauf/internal/history"
)

// Row type discriminators.
const (
	typeSession       = "SESSION"
	typeActiveDay     = "ACTIVE_DAY"
	typeHomeofficeDay = "HOMEOFFICE_DAY"
)

// expectedHeader must match an import file exactly before any data row is
// processed. Column names stay compatible with the original export files.
var expectedHeader = []string{
	"TYPE", "Datum", "Uhrzeit", "Dauer (Minuten)", "Abgeschlossen",
	"Belohnungstyp", "Content1", "Content2",
}

// ErrHeaderMismatch rejects a whole import; unlike malformed data rows,
// a wrong header means the file is not ours.
var ErrHeaderMismatch = errors.New("csv header does not match expected schema")

var timeOfDayRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// Document is the full exportable state.
type Document struct {
	Sessions       []history.Session
	ActiveDays     []string
	HomeofficeDays []string
}

// SkippedRow describes one data row dropped during import.
type SkippedRow struct {
	Line   int
	Reason string
}

// ImportResult carries the imported data plus a report of skipped rows.
type ImportResult struct {
	Document
	Skipped []SkippedRow
}

// Export writes the document as semicolon-separated CSV.
func Export(w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(expectedHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range doc.Sessions {
		date, _ := ToEuropean(s.Date)
		completed := "Nein"
		if s.Completed {
			completed = "Ja"
		}
		content1, content2 := rewardColumns(s.Reward)
		row := []string{
			typeSession, date, s.Time, strconv.Itoa(s.DurationMinutes),
			completed, string(s.Reward.Kind), content1, content2,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing session row: %w", err)
		}
	}

	for _, d := range doc.ActiveDays {
		if err := writeDayRow(cw, typeActiveDay, d); err != nil {
			return err
		}
	}
	for _, d := range doc.HomeofficeDays {
		if err := writeDayRow(cw, typeHomeofficeDay, d); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeDayRow(cw *csv.Writer, rowType, isoDate string) error {
	date, _ := ToEuropean(isoDate)
	if err := cw.Write([]string{rowType, date, "", "", "", "", "", ""}); err != nil {
		return fmt.Errorf("writing %s row: %w", rowType, err)
	}
	return nil
}

func rewardColumns(r history.Reward) (content1, content2 string) {
	if r.Kind == history.KindQuiz {
		return r.Question, r.Answer
	}
	return r.Text, ""
}

// Import parses a CSV document. The header must match exactly or the whole
// import is rejected with ErrHeaderMismatch. Malformed data rows are
// skipped, not fatal; each skip is reported in the result.
func Import(r io.Reader) (*ImportResult, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("%w: got %v", ErrHeaderMismatch, header)
	}

	result := &ImportResult{}
	line := 1
	for {
		record, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			result.skip(line, fmt.Sprintf("unreadable row: %v", err))
			continue
		}
		result.addRecord(line, record)
	}
	return result, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(expectedHeader) {
		return false
	}
	for i, h := range header {
		if h != expectedHeader[i] {
			return false
		}
	}
	return true
}

func (res *ImportResult) skip(line int, reason string) {
	res.Skipped = append(res.Skipped, SkippedRow{Line: line, Reason: reason})
}

func (res *ImportResult) addRecord(line int, record []string) {
	if len(record) != len(expectedHeader) {
		res.skip(line, fmt.Sprintf("expected %d columns, got %d", len(expectedHeader), len(record)))
		return
	}

	switch record[0] {
	case typeSession:
		res.addSession(line, record)
	case typeActiveDay:
		if date, ok := ToISO(record[1]); ok {
			res.ActiveDays = append(res.ActiveDays, date)
		} else {
			res.skip(line, fmt.Sprintf("invalid date %q", record[1]))
		}
	case typeHomeofficeDay:
		if date, ok := ToISO(record[1]); ok {
			res.HomeofficeDays = append(res.HomeofficeDays, date)
		} else {
			res.skip(line, fmt.Sprintf("invalid date %q", record[1]))
		}
	default:
		res.skip(line, fmt.Sprintf("unknown row type %q", record[0]))
	}
}

func (res *ImportResult) addSession(line int, record []string) {
	date, ok := ToISO(record[1])
	if !ok {
		res.skip(line, fmt.Sprintf("invalid date %q", record[1]))
		return
	}
	timeOfDay := record[2]
	if !timeOfDayRe.MatchString(timeOfDay) {
		res.skip(line, fmt.Sprintf("invalid time %q", timeOfDay))
		return
	}
	duration, err := strconv.Atoi(record[3])
	if err != nil {
		res.skip(line, fmt.Sprintf("invalid duration %q", record[3]))
		return
	}
	kind := history.RewardKind(record[5])
	if !kind.Valid() {
		res.skip(line, fmt.Sprintf("unknown reward kind %q", record[5]))
		return
	}

	reward := history.Reward{Kind: kind}
	if kind == history.KindQuiz {
		reward.Question = record[6]
		reward.Answer = record[7]
	} else {
		reward.Text = record[6]
	}

	res.Sessions = append(res.Sessions, history.Session{
		ID:              history.ImportedID(date, timeOfDay),
		Date:            date,
		Time:            timeOfDay,
		DurationMinutes: duration,
		Completed:       record[4] == "Ja",
		Reward:          reward,
	})
}
