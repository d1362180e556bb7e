package suggest

import (
	"github.com/luevano/libsocial"
	"github.com/luevano/libsocial/mention"
)

// MentionWatcher returns a mention Watcher that filters the directory
// with the mention being typed and passes the suggestions to onSuggest.
//
// Use it with libsocial.View.SetMentionTextChangedListener.
// Filter errors are logged and no suggestions are passed.
func (d *Directory) MentionWatcher(onSuggest func([]*mention.Mention)) libsocial.Watcher {
	return func(_ *libsocial.View, value string) {
		suggestions, err := d.Filter(value)
		if err != nil {
			d.logger.Log("could not suggest for %q: %s", value, err)
			return
		}
		onSuggest(suggestions)
	}
}
