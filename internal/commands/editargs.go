package commands

import "strings"

// Markers located in the joined edit tail. They are matched as literal
// substrings, so a description containing " -t " or " -d " is read as a flag.
const (
	titleMarker = " -t "
	descMarker  = " -d "
)

// EditRequest is the parsed form of the arguments after the task name.
type EditRequest struct {
	// Title is the new title when Rename is set.
	Title  string
	Rename bool

	// Description is the new description when Describe is set. An empty
	// value is stored as the default description.
	Description string
	Describe    bool
}

// ParseEditArgs parses the tokens that follow the task name.
//
// Parsing rules:
//  1. The tokens are joined with single spaces.
//  2. If " -t " or " -d " occurs, the flagged form applies: each value runs
//     from after its marker to the other marker (if that comes later) or to
//     the end. A missing marker means "not requested".
//  3. A tail that ends in "-d" with nothing after it sets an empty description.
//  4. Otherwise the plain form applies: the whole tail is the description.
func ParseEditArgs(rest []string) EditRequest {
	joined := strings.Join(rest, " ")
	sc := scanEditTail(" " + joined)

	if sc.title < 0 && sc.desc < 0 {
		return EditRequest{Description: joined, Describe: true}
	}

	var req EditRequest
	if sc.title >= 0 {
		req.Rename = true
		req.Title = sc.value(sc.title, sc.desc)
	}
	if sc.desc >= 0 {
		req.Describe = true
		if !sc.descAtEnd {
			req.Description = sc.value(sc.desc, sc.title)
		}
	}
	return req
}

// editScan records marker positions in a tail that has been prefixed with a
// space, so a flag given as the first token is still found.
type editScan struct {
	tail      string
	title     int // index of titleMarker, or -1
	desc      int // index of descMarker, or -1
	descAtEnd bool
}

func scanEditTail(tail string) editScan {
	sc := editScan{
		tail:  tail,
		title: strings.Index(tail, titleMarker),
		desc:  strings.Index(tail, descMarker),
	}
	if sc.desc < 0 {
		bare := strings.TrimRight(descMarker, " ")
		if strings.HasSuffix(tail, bare) {
			sc.desc = len(tail) - len(bare)
			sc.descAtEnd = true
		}
	}
	return sc
}

// value returns the text after the marker at start, up to other when other
// comes later, else to the end of the tail.
func (sc editScan) value(start, other int) string {
	from := start + len(titleMarker)
	to := len(sc.tail)
	if other > start {
		to = other
	}
	if from >= to {
		return ""
	}
	return sc.tail[from:to]
}
