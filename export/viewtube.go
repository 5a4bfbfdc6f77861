package export

import "yt2alt/profile"

// ViewTubeSubscription is a subscribed channel entry in a ViewTube
// subscriptions export. Subscriptions are the only collection ViewTube
// imports.
type ViewTubeSubscription struct {
	Author   string `json:"author"`
	AuthorID string `json:"authorId"`
}

// ToViewTubeSubscriptions maps a profile to a ViewTube subscriptions
// document. Returns nil when no channels were imported.
func ToViewTubeSubscriptions(p *profile.Profile) []ViewTubeSubscription {
	if p.Channels == nil {
		return nil
	}

	subs := make([]ViewTubeSubscription, len(p.Channels))
	for i, channel := range p.Channels {
		subs[i] = ViewTubeSubscription{
			Author:   channel.Name,
			AuthorID: channel.ID,
		}
	}
	return subs
}
