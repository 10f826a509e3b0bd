package config

import "time"

// Application constants shared by the truncate and fetch commands.
const (
	AppName = "flightcli"

	// Truncation defaults (CLI flag defaults live here so tests can
	// assert against a single source of truth)
	DefaultDateColumn = "flightDate"
	DefaultChunkSize  = 500000

	// Directory names under the data root. "turncated" is the published
	// artifact directory name; downstream notebooks already depend on
	// the historical spelling, so it stays.
	RawDirName       = "raw"
	TruncatedDirName = "turncated"

	// Dataset acquisition defaults
	DefaultDatasetBaseURL = "https://www.kaggle.com/api/v1"
	DefaultDataset        = "dilwong/flightprices"
	DefaultDatasetFile    = "itineraries.csv"
	DefaultFetchTimeout   = 15 * time.Minute

	// Raw artifacts written by the fetch command
	RawNormalizedName = "flightprices_raw.csv"
	RawSampleName     = "flightprices_raw_small_random_sampled.csv"

	// Sample sizing: at most SampleRows rows, drawn with a fixed seed so
	// reruns produce the identical sample file.
	SampleRows = 120000
	SampleSeed = 42
)

// CandidateRawFiles lists the filenames probed under data/raw when no
// explicit --csv is given, in probe order.
var CandidateRawFiles = []string{
	"itineraries.csv",
}
