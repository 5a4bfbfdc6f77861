package export

import "yt2alt/profile"

// ToNewPipeSubscriptions maps a profile to a NewPipe subscriptions
// document. NewPipe and Piped share the same subscriptions format;
// subscriptions are the only collection NewPipe imports.
func ToNewPipeSubscriptions(p *profile.Profile) *PipedSubscriptions {
	return ToPipedSubscriptions(p)
}
