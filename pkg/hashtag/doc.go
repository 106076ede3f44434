// Package hashtag extracts hashtags and their byte offsets from text.
//
// A hashtag is a '#' followed by a run of tag characters (Unicode letters,
// Unicode decimal digits and '_'). The '#' must not be glued to a preceding
// word character or another '#', and a run made only of digits is not a
// hashtag:
//
//	"#rust is #awesome" -> rust [0,4), awesome [9,16)
//	"foo#bar"           -> nothing
//	"##tag"             -> nothing
//	"#123" / "#123abc"  -> nothing / 123abc [0,7)
//
// Offsets are byte offsets into the input. input[m.Start:m.End] is the full
// hashtag including '#', and input[m.Start+1:m.End] == m.Text.
//
// Scanning never fails. A candidate that does not qualify is skipped and the
// scan resumes right after its '#'.
//
// Usage:
//
//	for m := range hashtag.All(text) {
//		fmt.Println(m.Text, m.Start, m.End)
//	}
//
//	tags := hashtag.Parse(text)
//
// Nothing is shared between calls; all functions are safe for concurrent use.
package hashtag
