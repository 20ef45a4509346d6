package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/theoremus-urban-solutions/istdaten-pipeline/config"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/internal"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/pipeline"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/reader"
	"github.com/theoremus-urban-solutions/istdaten-pipeline/stats"
)

const dateLayout = "2006-01-02"

type summaryOutput struct {
	Tier  string         `json:"tier"`
	From  string         `json:"from"`
	To    string         `json:"to"`
	Rows  int            `json:"rows"`
	Stats *stats.Summary `json:"stats,omitempty"`
}

func main() {
	configPath := flag.String("config", "config.yml", "configuration file")
	tier := flag.String("tier", "cleaned", "raw|cleaned|prepared")
	date := flag.String("date", "", "single date (YYYY-MM-DD)")
	from := flag.String("from", "", "range start (YYYY-MM-DD), with -to")
	to := flag.String("to", "", "range end (YYYY-MM-DD), with -from")
	operator := flag.String("operator", "", "operator code for the prepared tier (overrides policy default)")
	departureOnly := flag.Bool("departureOnly", false, "gate only on departure validity")
	clip := flag.Bool("clip", false, "enable delay outlier clipping")
	flag.Parse()

	internal.InitLogging()
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	policy := pipeline.DefaultPolicy()
	if *departureOnly {
		policy = pipeline.DeparturePolicy()
	}
	if *operator != "" {
		policy.Operator = *operator
	}
	policy.EnableOutlierClip = *clip

	rd, err := reader.New(cfg, policy)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	out, err := run(ctx, rd, *tier, *date, *from, *to)
	if err != nil {
		panic(err)
	}

	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(buf))
}

func run(ctx context.Context, rd *reader.Reader, tier, date, from, to string) (*summaryOutput, error) {
	single := date != ""
	if single == (from != "" || to != "") {
		return nil, fmt.Errorf("pass either -date or -from/-to")
	}

	var start, end time.Time
	var err error
	if single {
		if start, err = time.Parse(dateLayout, date); err != nil {
			return nil, err
		}
		end = start
	} else {
		if start, err = time.Parse(dateLayout, from); err != nil {
			return nil, err
		}
		if end, err = time.Parse(dateLayout, to); err != nil {
			return nil, err
		}
	}

	var df dataframe.DataFrame
	switch tier {
	case "raw":
		if !single {
			return nil, fmt.Errorf("the raw tier supports single dates only")
		}
		df, err = rd.ReadRaw(ctx, start)
	case "cleaned":
		df, err = rd.ReadCleanedRange(ctx, start, end)
	case "prepared":
		df, err = rd.ReadPreparedRange(ctx, start, end)
	default:
		return nil, fmt.Errorf("unknown tier %q", tier)
	}
	if err != nil {
		return nil, err
	}

	out := &summaryOutput{
		Tier: tier,
		From: start.Format(dateLayout),
		To:   end.Format(dateLayout),
		Rows: df.Nrow(),
	}
	if tier != "raw" {
		s := stats.Summarize(df)
		out.Stats = &s
	}
	return out, nil
}
