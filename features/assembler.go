// Package features turns raw team-week stat rows into the fixed-shape
// feature vectors the win-probability model trains and predicts on.
package features

import (
	"sort"

	"nfl-survivor-go/models"
)

// VectorSize is the length of every feature vector this package emits.
const VectorSize = 10

// StatsLookup resolves the latest stat row for a team at or before a
// given week. Implementations (the store layer) return nil when no row
// exists yet for that team.
type StatsLookup func(team string, season, weekUpper int) *models.TeamWeekStats

// Vector builds the home-perspective feature vector for one matchup,
// in the fixed order the model expects:
//
//	0 total_dvoa_H - total_dvoa_A
//	1 offense_dvoa_H - offense_dvoa_A
//	2 defense_dvoa_A - defense_dvoa_H (inverted)
//	3 off_epa_H - off_epa_A
//	4 def_epa_A - def_epa_H (inverted)
//	5 srs_H - srs_A
//	6 recent_form_H - recent_form_A
//	7 rest_days_H - rest_days_A
//	8 is_home
//	9 is_neutral
func Vector(home, away *models.TeamWeekStats, neutral bool) [VectorSize]float64 {
	var v [VectorSize]float64
	v[0] = home.TotalDVOAOr0() - away.TotalDVOAOr0()
	v[1] = home.OffenseDVOAOr0() - away.OffenseDVOAOr0()
	v[2] = away.DefenseDVOAOr0() - home.DefenseDVOAOr0()
	v[3] = home.OffEPAOr0() - away.OffEPAOr0()
	v[4] = away.DefEPAOr0() - home.DefEPAOr0()
	v[5] = home.SRSOr0() - away.SRSOr0()
	v[6] = home.RecentFormOr0() - away.RecentFormOr0()
	v[7] = float64(home.RestDaysOr(7) - away.RestDaysOr(7))
	if neutral {
		v[8] = 0
		v[9] = 1
	} else {
		v[8] = 1
		v[9] = 0
	}
	return v
}

// IsTrainable reports whether a vector carries real signal: features
// 1-6 (indices 0-5) being all exactly zero is the proxy for "both teams
// have no stats yet", and such samples are excluded from training.
func IsTrainable(v [VectorSize]float64) bool {
	for i := 0; i <= 5; i++ {
		if v[i] != 0 {
			return true
		}
	}
	return false
}

// TrainingSample is one labeled feature vector plus the game it came
// from, kept around for diagnostics.
type TrainingSample struct {
	Features [VectorSize]float64
	Label    float64 // 1 if home won, 0 otherwise
	Season   int
	Week     int
	Home     string
	Away     string
}

// Assemble builds training samples for every played game, skipping
// games whose feature vector is all-zero on the signal features. A side
// with no stat row contributes zeros rather than excluding the game.
// lookup resolves each side's latest stat row at or before the game's
// week.
func Assemble(games []models.Game, lookup StatsLookup) []TrainingSample {
	samples := make([]TrainingSample, 0, len(games))
	for _, g := range games {
		if !g.IsPlayed() {
			continue
		}
		home := lookup(g.Home, g.Season, g.Week)
		away := lookup(g.Away, g.Season, g.Week)
		vec := Vector(home, away, g.Neutral)
		if !IsTrainable(vec) {
			continue
		}
		label := 0.0
		if *g.HomeWin {
			label = 1.0
		}
		samples = append(samples, TrainingSample{
			Features: vec,
			Label:    label,
			Season:   g.Season,
			Week:     g.Week,
			Home:     g.Home,
			Away:     g.Away,
		})
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Season != samples[j].Season {
			return samples[i].Season < samples[j].Season
		}
		return samples[i].Week < samples[j].Week
	})
	return samples
}
