// Package demo writes a self-contained sample workspace: exports for two
// periods, their sales files and the catalog describing them.
package demo

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"adkpi/internal/adapter/csvfile"
	"adkpi/internal/config"
)

// CatalogFile is the name of the catalog Seed writes.
const CatalogFile = "datasets.yaml"

var (
	countries = []string{"TR", "AZ", "US", "DE", "GB", "UZ"}
	adSets    = []string{"Spring sale", "Retargeting", "Lookalike 1%", "Brand awareness"}
	campaigns = []string{"Launch", "Always on", "Creators"}
	periods   = []string{"2025-01", "2025-02"}
)

// Seed writes the demo files into dir, which must exist. The same seed
// always produces the same files.
func Seed(dir string, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	var cat config.Catalog

	for _, period := range periods {
		adSetFile := fmt.Sprintf("meta-%s.csv", period)
		campaignFile := fmt.Sprintf("tiktok-%s.csv", period)
		salesFile := fmt.Sprintf("sales-%s.csv", period)

		if err := export(r, csvfile.AdSetSchema, adSets).WriteFile(filepath.Join(dir, adSetFile)); err != nil {
			return err
		}
		if err := export(r, csvfile.CampaignSchema, campaigns).WriteFile(filepath.Join(dir, campaignFile)); err != nil {
			return err
		}
		if err := sales(r).WriteFile(filepath.Join(dir, salesFile)); err != nil {
			return err
		}

		cat.Datasets = append(cat.Datasets,
			config.DatasetEntry{
				ID:       "meta-" + period,
				Title:    "Meta ad sets " + period,
				Platform: "meta",
				Period:   period,
				Path:     adSetFile,
				Schema:   csvfile.AdSetSchema.Name,
			},
			config.DatasetEntry{
				ID:       "tiktok-" + period,
				Title:    "TikTok campaigns " + period,
				Platform: "tiktok",
				Period:   period,
				Path:     campaignFile,
				Schema:   csvfile.CampaignSchema.Name,
			})
		cat.Sales = append(cat.Sales, config.SalesEntry{Period: period, Path: salesFile})
	}

	raw, err := yaml.Marshal(&cat)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, CatalogFile), raw, 0o644)
}

// export builds one platform export. Like the real ones it starts with a
// subtotal row that has no country.
func export(r *rand.Rand, s csvfile.Schema, groups []string) *csvfile.Table {
	t := &csvfile.Table{
		Header: []string{s.Country, s.Group, s.AmountSpent, s.Impressions, s.LinkClicks, s.Reach, s.Results},
	}
	var spend float64
	var impressions, clicks, reach, results int64
	for _, g := range groups {
		for _, c := range countries {
			if r.Intn(4) == 0 {
				continue
			}
			impr := int64(500 + r.Intn(50000))
			clk := impr * int64(5+r.Intn(25)) / 1000
			rch := impr * int64(40+r.Intn(50)) / 100
			res := clk * int64(r.Intn(30)) / 100
			amount := float64(impr) * (2 + r.Float64()*8) / 1000

			spend += amount
			impressions += impr
			clicks += clk
			reach += rch
			results += res
			t.Rows = append(t.Rows, []string{
				c, g, strconv.FormatFloat(amount, 'f', 2, 64),
				itoa(impr), itoa(clk), itoa(rch), itoa(res),
			})
		}
	}
	subtotal := []string{"", "", strconv.FormatFloat(spend, 'f', 2, 64),
		itoa(impressions), itoa(clicks), itoa(reach), itoa(results)}
	t.Rows = append([][]string{subtotal}, t.Rows...)
	return t
}

// sales builds a sales file for the campaigns plus one channel no ad group
// matches.
func sales(r *rand.Rand) *csvfile.Table {
	t := &csvfile.Table{Header: []string{"Campaign", "Orders", "Revenue (USD)"}}
	for _, name := range append(append([]string{}, campaigns...), "Organic") {
		orders := r.Intn(60)
		revenue := float64(orders) * (20 + r.Float64()*40)
		t.Rows = append(t.Rows, []string{name, strconv.Itoa(orders), strconv.FormatFloat(revenue, 'f', 2, 64)})
	}
	return t
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
