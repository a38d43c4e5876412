package scoring

import (
	"testing"

	"github.com/KirkDiggler/oraculo/internal/models"
	"github.com/stretchr/testify/suite"
)

type ScoringTestSuite struct {
	suite.Suite
}

func TestScoringTestSuite(t *testing.T) {
	suite.Run(t, new(ScoringTestSuite))
}

func scored(id string, score int) *models.Player {
	return &models.Player{ID: id, Name: id, Score: &score}
}

func (s *ScoringTestSuite) TestComputeScoreByPact() {
	tallies := models.Tallies{Relics: 5, Plagues: 2, Powers: 1}

	s.Equal(12, ComputeScore(models.PactAtenea, tallies).Total)
	s.Equal(14, ComputeScore(models.PactLoki, tallies).Total)
	s.Equal(10, ComputeScore(models.PactLongwang, tallies).Total)
	s.Equal(0, ComputeScore(models.Pact("hades"), tallies).Total)
	s.Equal(tallies, ComputeScore(models.PactAtenea, tallies).Details)
}

func (s *ScoringTestSuite) TestScoresCanBeNegative() {
	result := ComputeScore(models.PactAtenea, models.Tallies{Plagues: 4})
	s.Equal(-8, result.Total)
}

func (s *ScoringTestSuite) TestApplyScoreLeavesInputUntouched() {
	player := &models.Player{ID: "a", Pact: models.PactLongwang}

	out := ApplyScore(player, models.Tallies{Relics: 1, Powers: 1})

	s.Nil(player.Score)
	s.Require().NotNil(out.Score)
	s.Equal(4, *out.Score)
	s.Equal(models.Tallies{Relics: 1, Powers: 1}, *out.ScoreDetails)
}

func (s *ScoringTestSuite) TestRankSharesTiedPositions() {
	players := []*models.Player{scored("a", 10), scored("b", 10), scored("c", 8)}

	entries := Rank(players, map[string]int{"a": 1, "b": 1})

	s.Require().Len(entries, 3)
	s.Equal([]int{1, 1, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
	s.Equal("a", entries[0].Player.ID)
	s.Equal("b", entries[1].Player.ID)
	s.Equal("c", entries[2].Player.ID)
}

func (s *ScoringTestSuite) TestRankBreaksScoreTiesWithHonors() {
	players := []*models.Player{scored("a", 10), scored("b", 10), scored("c", 12)}

	entries := Rank(players, map[string]int{"b": 2})

	s.Equal("c", entries[0].Player.ID)
	s.Equal("b", entries[1].Player.ID)
	s.Equal("a", entries[2].Player.ID)
	s.Equal([]int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}

func (s *ScoringTestSuite) TestRankAfterTripleTie() {
	players := []*models.Player{scored("a", 3), scored("b", 3), scored("c", 3), scored("d", 1)}

	entries := Rank(players, nil)

	s.Equal([]int{1, 1, 1, 4}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank})
}

func (s *ScoringTestSuite) TestHonorCountsCreditEveryTiedLeader() {
	players := []*models.Player{scored("a", 0), scored("b", 0), scored("c", 0)}
	log := &models.GameLog{
		MinigameWins: map[string]int{"a": 2, "b": 2, "c": 1},
	}

	honors := HonorCounts(players, log)

	s.Equal(map[string]int{"a": 1, "b": 1, "c": 0}, honors)
}

func (s *ScoringTestSuite) TestHonorCountsAcrossCategories() {
	players := []*models.Player{scored("a", 0), scored("b", 0), scored("c", 0)}
	log := &models.GameLog{
		MinigameWins: map[string]int{"c": 1},
		MentionVotes: map[string]map[string]int{
			"liar":   {"a": 3, "b": 1},
			"hero":   {"a": 1, "c": 1},
			"unused": {},
			"ghosts": {"zz": 9},
		},
	}

	honors := HonorCounts(players, log)

	s.Equal(map[string]int{"a": 2, "b": 0, "c": 2}, honors)
}

func (s *ScoringTestSuite) TestZeroCountsAwardNothing() {
	players := []*models.Player{scored("a", 0), scored("b", 0)}
	log := &models.GameLog{
		MinigameWins: map[string]int{"a": 0, "b": 0},
	}

	s.Equal(map[string]int{"a": 0, "b": 0}, HonorCounts(players, log))

	_, ok := TopHonor(models.CategoryMinigames, players, log)
	s.False(ok)
}

func (s *ScoringTestSuite) TestTopHonorPrefersHigherScore() {
	players := []*models.Player{scored("a", 5), scored("b", 9), scored("c", 9)}
	log := &models.GameLog{
		MentionVotes: map[string]map[string]int{
			"liar": {"a": 2, "b": 2, "c": 2},
		},
	}

	honor, ok := TopHonor("liar", players, log)
	s.Require().True(ok)
	s.Equal("b", honor.PlayerID)
	s.Equal(2, honor.Count)
	s.Equal("liar", honor.Category)
}

func (s *ScoringTestSuite) TestTopHonorsListsEveryAwardedCategory() {
	players := []*models.Player{scored("a", 1), scored("b", 2)}
	log := &models.GameLog{
		MinigameWins: map[string]int{"a": 1},
		MentionVotes: map[string]map[string]int{
			"hero": {"b": 1},
			"liar": {},
		},
	}

	honors := TopHonors(players, log)

	s.Equal([]models.Honor{
		{Category: models.CategoryMinigames, PlayerID: "a", Count: 1},
		{Category: "hero", PlayerID: "b", Count: 1},
	}, honors)
}

func (s *ScoringTestSuite) TestCategoriesWithoutLog() {
	s.Equal([]string{models.CategoryMinigames}, Categories(nil))
	s.Equal(map[string]int{"a": 0}, HonorCounts([]*models.Player{scored("a", 0)}, nil))
}
