// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package channels

import (
	"context"

	"github.com/eshkanala/AllTheAds/pkg/types"
)

// DevCommunitiesFinder derives developer community names from the niche by
// templating (R3.1). It makes no network calls and never fails.
type DevCommunitiesFinder struct{}

// Name returns the finder identifier.
func (DevCommunitiesFinder) Name() string { return "dev_communities" }

// Find returns the templated dev.to tag, developer group, and community
// site names for the cleaned niche.
func (DevCommunitiesFinder) Find(_ context.Context, niche string, _ types.DiscoveryConfig) ([]types.Channel, error) {
	clean := CleanText(niche)
	return []types.Channel{
		{Category: types.CategoryDevCommunities, Name: "dev.to/" + clean},
		{Category: types.CategoryDevCommunities, Name: clean + "developers"},
		{Category: types.CategoryDevCommunities, Name: "community." + clean + ".org"},
	}, nil
}

// OnlineCommunitiesFinder derives Quora and Medium topic names from the
// niche by templating (R3.2). Unlike the dev names, these keep the raw
// niche string.
type OnlineCommunitiesFinder struct{}

// Name returns the finder identifier.
func (OnlineCommunitiesFinder) Name() string { return "online_communities" }

// Find returns the templated Quora space and Medium topic names.
func (OnlineCommunitiesFinder) Find(_ context.Context, niche string, _ types.DiscoveryConfig) ([]types.Channel, error) {
	return []types.Channel{
		{Category: types.CategoryQuoraTopics, Name: niche + " Community"},
		{Category: types.CategoryQuoraTopics, Name: niche + " Discussions"},
		{Category: types.CategoryQuoraTopics, Name: "Experts in " + niche},
		{Category: types.CategoryMediumTopics, Name: niche + " Insights"},
		{Category: types.CategoryMediumTopics, Name: niche + " Community"},
		{Category: types.CategoryMediumTopics, Name: "All About " + niche},
	}, nil
}
