package internal

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
)

// Run is the text payload of one a:r element. Start and End are byte
// offsets of the raw payload within the part; Text is the unescaped
// payload.
type Run struct {
	Start int
	End   int
	Text  string
}

// Paragraph groups the runs of one a:p element in document order.
type Paragraph struct {
	Runs []Run
}

// FlatText returns the concatenated run texts of the paragraph.
func (p Paragraph) FlatText() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// bounds returns the flat byte offset where each run begins; the final
// entry is the total flat length.
func (p Paragraph) bounds() []int {
	b := make([]int, len(p.Runs)+1)
	for i, r := range p.Runs {
		b[i+1] = b[i] + len(r.Text)
	}
	return b
}

// ParseParagraphs scans a slide or notes part for a:p elements and
// records the a:t payload of every run. Only payload bytes are indexed;
// all surrounding markup stays untouched, which keeps later splicing
// byte-exact for everything outside the rewritten payloads.
func ParseParagraphs(part []byte) []Paragraph {
	var paras []Paragraph
	pos := 0
	for {
		pStart, pBody, pSelf := nextElement(part, pos, ElemParagraph)
		if pStart < 0 {
			break
		}
		if pSelf {
			pos = pBody
			continue
		}
		pEnd := closeIndex(part, pBody, ElemParagraph)
		if pEnd < 0 {
			break
		}
		paras = append(paras, parseRuns(part, pBody, pEnd))
		pos = pEnd + len(ElemParagraph) + 3
	}
	return paras
}

// parseRuns collects the runs of one paragraph between from and to.
func parseRuns(part []byte, from, to int) Paragraph {
	var para Paragraph
	pos := from
	for pos < to {
		rStart, rBody, rSelf := nextElement(part[:to], pos, ElemRun)
		if rStart < 0 {
			break
		}
		if rSelf {
			pos = rBody
			continue
		}
		rEnd := closeIndex(part[:to], rBody, ElemRun)
		if rEnd < 0 {
			break
		}
		if run, ok := parseRunText(part, rBody, rEnd); ok {
			para.Runs = append(para.Runs, run)
		}
		pos = rEnd + len(ElemRun) + 3
	}
	return para
}

// parseRunText locates the a:t payload inside one run. Runs without a
// text element, and self-closed empty text elements, carry no payload.
func parseRunText(part []byte, from, to int) (Run, bool) {
	tStart, tBody, tSelf := nextElement(part[:to], from, ElemText)
	if tStart < 0 || tSelf {
		return Run{}, false
	}
	tEnd := closeIndex(part[:to], tBody, ElemText)
	if tEnd < 0 {
		return Run{}, false
	}
	return Run{
		Start: tBody,
		End:   tEnd,
		Text:  UnescapeText(string(part[tBody:tEnd])),
	}, true
}

// nextElement locates the next <name ...> opening tag at or after from.
// It returns the tag start, the offset just past the tag, and whether
// the element was self-closing. start is -1 when absent. A candidate
// whose name merely begins with name (a:rPr for a:r) is skipped.
func nextElement(b []byte, from int, name string) (start, after int, selfClosed bool) {
	open := []byte("<" + name)
	for {
		idx := bytes.Index(b[from:], open)
		if idx < 0 {
			return -1, 0, false
		}
		idx += from
		rest := idx + len(open)
		if rest >= len(b) {
			return -1, 0, false
		}
		switch b[rest] {
		case '>':
			return idx, rest + 1, false
		case '/':
			if rest+1 < len(b) && b[rest+1] == '>' {
				return idx, rest + 2, true
			}
		case ' ', '\t', '\r', '\n':
			gt := bytes.IndexByte(b[rest:], '>')
			if gt < 0 {
				return -1, 0, false
			}
			end := rest + gt
			if b[end-1] == '/' {
				return idx, end + 1, true
			}
			return idx, end + 1, false
		}
		from = idx + 1
	}
}

// closeIndex returns the offset of </name> at or after from, or -1.
func closeIndex(b []byte, from int, name string) int {
	idx := bytes.Index(b[from:], []byte("</"+name+">"))
	if idx < 0 {
		return -1
	}
	return from + idx
}

// Edit replaces the flat byte range [Start, End) of a paragraph's text
// with Text. Edits must not overlap each other.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Splice is a pending byte replacement of one run payload in a part.
type Splice struct {
	Start int
	End   int
	Data  []byte
}

// ApplyEdits projects flat-text edits back onto the paragraph's runs.
// The replacement text lands in the run where the edit begins; later
// runs covered by the edit lose the covered characters and keep the
// rest. Runs no edit touches produce no splice and so keep their exact
// original bytes.
func ApplyEdits(p Paragraph, edits []Edit) []Splice {
	if len(edits) == 0 || len(p.Runs) == 0 {
		return nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	bounds := p.bounds()
	var splices []Splice
	for i, run := range p.Runs {
		bs, be := bounds[i], bounds[i+1]
		touched := false
		cursor := bs
		var sb strings.Builder
		for _, e := range sorted {
			if e.End <= bs || e.Start >= be {
				continue
			}
			touched = true
			os := e.Start
			if os < bs {
				os = bs
			}
			oe := e.End
			if oe > be {
				oe = be
			}
			sb.WriteString(run.Text[cursor-bs : os-bs])
			if e.Start >= bs {
				sb.WriteString(e.Text)
			}
			cursor = oe
		}
		if !touched {
			continue
		}
		sb.WriteString(run.Text[cursor-bs:])
		splices = append(splices, Splice{
			Start: run.Start,
			End:   run.End,
			Data:  []byte(EscapeText(sb.String())),
		})
	}
	return splices
}

// ApplySplices returns a copy of part with every splice applied.
// Splices must be sorted ascending and non-overlapping.
func ApplySplices(part []byte, splices []Splice) []byte {
	if len(splices) == 0 {
		return part
	}
	grow := 0
	for _, s := range splices {
		grow += len(s.Data) - (s.End - s.Start)
	}
	out := make([]byte, 0, len(part)+grow)
	cursor := 0
	for _, s := range splices {
		out = append(out, part[cursor:s.Start]...)
		out = append(out, s.Data...)
		cursor = s.End
	}
	return append(out, part[cursor:]...)
}

// ExtractText returns the plain text of a slide or notes part, with
// paragraphs joined by newlines.
func ExtractText(part []byte) string {
	paras := ParseParagraphs(part)
	if len(paras) == 0 {
		return ""
	}
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.FlatText()
	}
	return strings.Join(texts, "\n")
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeText escapes a string for use as XML character data.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// UnescapeText decodes the predefined XML entities and numeric
// character references. Anything unrecognized is kept verbatim.
func UnescapeText(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '&' {
			sb.WriteByte(c)
			i++
			continue
		}
		semi := strings.IndexByte(s[i:], ';')
		if semi < 2 || semi > 10 {
			sb.WriteByte(c)
			i++
			continue
		}
		r, ok := decodeEntity(s[i+1 : i+semi])
		if !ok {
			sb.WriteByte(c)
			i++
			continue
		}
		sb.WriteRune(r)
		i += semi + 1
	}
	return sb.String()
}

// decodeEntity resolves one entity body (without & and ;).
func decodeEntity(ent string) (rune, bool) {
	switch ent {
	case "amp":
		return '&', true
	case "lt":
		return '<', true
	case "gt":
		return '>', true
	case "quot":
		return '"', true
	case "apos":
		return '\'', true
	}
	if !strings.HasPrefix(ent, "#") {
		return 0, false
	}
	body := ent[1:]
	base := 10
	if strings.HasPrefix(body, "x") || strings.HasPrefix(body, "X") {
		body = body[1:]
		base = 16
	}
	v, err := strconv.ParseInt(body, base, 32)
	if err != nil || v < 0 {
		return 0, false
	}
	return rune(v), true
}
