package libsocial

import "fmt"

// Replace replaces the runes in [start, end) with insert.
//
// Offsets are in runes. Hashtag and mention watchers are
// notified with the token being typed, if any.
func (v *View) Replace(start, end int, insert string) error {
	if start < 0 || end < start || end > len(v.text) {
		return Error(fmt.Sprintf("invalid range [%d:%d] for text of length %d", start, end, len(v.text)))
	}

	inserted := []rune(insert)
	old := v.text

	v.beforeTextChanged(old, start, end-start, len(inserted))

	text := make([]rune, 0, len(old)-(end-start)+len(inserted))
	text = append(text, old[:start]...)
	text = append(text, inserted...)
	text = append(text, old[end:]...)
	v.text = text

	v.onTextChanged(text, start, end-start, len(inserted))
	return nil
}

// Insert inserts text at the given rune offset.
func (v *View) Insert(offset int, insert string) error {
	return v.Replace(offset, offset, insert)
}

// Delete removes the runes in [start, end).
func (v *View) Delete(start, end int) error {
	return v.Replace(start, end, "")
}

// Append adds text at the end.
func (v *View) Append(text string) {
	// end of text is always valid
	_ = v.Replace(len(v.text), len(v.text), text)
}

// beforeTextChanged is called before count runes starting at
// start are replaced by after runes.
func (v *View) beforeTextChanged(s []rune, start, count, after int) {
	if count <= 0 || start <= 0 {
		return
	}

	switch c := s[start-1]; {
	case c == '#':
		v.hashtagEditing = true
		v.mentionEditing = false
	case c == '@':
		v.hashtagEditing = false
		v.mentionEditing = true
	case !isLetterOrDigit(c):
		v.hashtagEditing = false
		v.mentionEditing = false
	default:
		from := indexOfPreviousNonLetterDigit(s, 0, start-1) + 1
		v.notifyWatcher(string(s[from:start]))
	}
}

// onTextChanged is called after count runes starting at
// start replaced before runes.
func (v *View) onTextChanged(s []rune, start, before, count int) {
	if len(s) == 0 {
		v.spans = nil
		return
	}
	v.Colorize()

	if start >= len(s) || start+count-1 < 0 {
		return
	}

	switch c := s[start+count-1]; {
	case c == '#':
		v.hashtagEditing = true
		v.mentionEditing = false
	case c == '@':
		v.hashtagEditing = false
		v.mentionEditing = true
	case !isLetterOrDigit(s[start]):
		v.hashtagEditing = false
		v.mentionEditing = false
	default:
		from := indexOfPreviousNonLetterDigit(s, 0, start) + 1
		v.notifyWatcher(string(s[from : start+count]))
	}
}

// notifyWatcher calls the watcher of the token being edited.
//
// Hashtags take precedence over mentions.
func (v *View) notifyWatcher(value string) {
	switch {
	case v.hashtagWatcher != nil && v.hashtagEditing:
		v.logger.Log("hashtag being typed: %q", value)
		v.hashtagWatcher(v, value)
	case v.mentionWatcher != nil && v.mentionEditing:
		v.logger.Log("mention being typed: %q", value)
		v.mentionWatcher(v, value)
	}
}

// indexOfPreviousNonLetterDigit searches (start, end] backwards,
// returns start when every rune is a letter or digit.
func indexOfPreviousNonLetterDigit(s []rune, start, end int) int {
	for i := end; i > start; i-- {
		if !isLetterOrDigit(s[i]) {
			return i
		}
	}
	return start
}
