package handler

import (
	"testing"

	"nerine_frontend/internal/domain/model"

	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	challs := []model.Challenge{
		{ID: "c1", Name: "heap", Category: "Pwn & Friends"},
		{ID: "c2", Name: "intro", Category: "misc"},
		{ID: "c3", Name: "uaf", Category: "Pwn & Friends"},
	}

	groups := groupByCategory(challs)
	require.Len(t, groups, 2)

	require.Equal(t, "Pwn & Friends", groups[0].Name)
	require.Equal(t, "pwn-friends", groups[0].Slug)
	require.Len(t, groups[0].Challenges, 2)

	require.Equal(t, "misc", groups[1].Name)
	require.Len(t, groups[1].Challenges, 1)
}

func TestBadgeInfoForOnlyCoversEarnedTypes(t *testing.T) {
	entries := []model.LeaderboardEntry{
		{Extra: model.EntryExtra{Badges: []model.Badge{
			{Type: "pwn", Obtained: "2024-06-02", Chall: "heap"},
			{Type: "unknown-tag", Obtained: "2024-06-02", Chall: "x"},
		}}},
	}

	info := badgeInfoFor(entries)
	require.Len(t, info, 1)
	require.Equal(t, "Poison Puffcap", info["pwn"].Name)
}
