package export

import (
	"testing"

	"yt2alt/profile"
)

func TestToViewTubeSubscriptions(t *testing.T) {
	p := &profile.Profile{
		Channels: []profile.Channel{
			{ID: "UC1", Name: "A"},
			{ID: "UC2", Name: "B"},
		},
	}

	subs := ToViewTubeSubscriptions(p)
	if len(subs) != 2 {
		t.Fatalf("subscriptions = %d, want 2", len(subs))
	}

	want := ViewTubeSubscription{Author: "A", AuthorID: "UC1"}
	if subs[0] != want {
		t.Errorf("subs[0] = %+v, want %+v", subs[0], want)
	}
}

func TestToViewTubeSubscriptions_NoChannels(t *testing.T) {
	if subs := ToViewTubeSubscriptions(&profile.Profile{}); subs != nil {
		t.Errorf("ToViewTubeSubscriptions(no channels) = %v, want nil", subs)
	}
}
