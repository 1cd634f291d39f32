package core

// Static alias tables. These are the accumulated spellings seen across
// instrument software versions (Malvern Mastersizer, Sympatec HELOS, manual
// QC spreadsheets). All entries must be lower-case and trimmed; order is
// priority order for substring matching, so keep exact instrument notations
// before loose words like "time".

// particleFields resolves the header of a simple tabular particle CSV.
var particleFields = []FieldSpec{
	{
		Canonical: "batchId",
		Aliases:   []string{"batch id", "batchid", "batch_id", "batch", "sample id", "sample name", "sample", "label"},
		Required:  true,
	},
	{
		Canonical: "d10",
		Aliases:   []string{"d10", "d(0.1)", "d (0.1)", "d 0.1", "d(v,0.1)", "x(q3=10.0%)", "x10"},
		Required:  true,
		Numeric:   true,
	},
	{
		Canonical: "d50",
		Aliases:   []string{"d50", "d(0.5)", "d (0.5)", "d 0.5", "d(v,0.5)", "x(q3=50.0%)", "x50", "median size"},
		Required:  true,
		Numeric:   true,
	},
	{
		Canonical: "d90",
		Aliases:   []string{"d90", "d(0.9)", "d (0.9)", "d 0.9", "d(v,0.9)", "x(q3=90.0%)", "x90"},
		Required:  true,
		Numeric:   true,
	},
	{
		Canonical: "span",
		Aliases:   []string{"span"},
		Numeric:   true,
	},
	{
		Canonical: "specificSurface",
		Aliases:   []string{"specific surface area", "specific surface", "ssa", "sv"},
		Numeric:   true,
	},
	{
		Canonical: "uniformity",
		Aliases:   []string{"uniformity"},
		Numeric:   true,
	},
	{
		Canonical: "volumeMean",
		Aliases:   []string{"volume mean", "d[4,3]", "d[4;3]", "d(4,3)", "vmd"},
		Numeric:   true,
	},
	{
		Canonical: "submicronPercent",
		Aliases:   []string{"submicron", "% < 1", "%<1", "below 1"},
		Numeric:   true,
	},
	{
		Canonical: "timestamp",
		Aliases:   []string{"timestamp", "measurement date", "analysis date", "date", "time"},
	},
}

// timePointField resolves the time column of a dissolution CSV. The vessel
// columns are positional and detected separately; see vesselColumns.
var timePointField = FieldSpec{
	Canonical: "timePoint",
	Aliases:   []string{"time point", "timepoint", "time (min)", "time"},
	Required:  true,
	Numeric:   true,
}

// minVesselColumns is the smallest dissolution apparatus we accept.
// USP <711> apparatus run six vessels; fewer named columns means the file
// is not a dissolution export.
const minVesselColumns = 6

// Metadata attribute names of the multi-section instrument dump. The first
// column of the metadata block holds these; values follow per sample.
const (
	attrOperatorNote = "comment 1" // MRA / run identifier, kept as timestamp
	attrSampleLabel  = "comment 2" // the composite sample label
)

// msAttrFields locates percentile and derived rows inside the metadata
// block by name, reusing the header-resolution matching rules. The
// attribute-name column is treated as a header vector.
var msAttrFields = []FieldSpec{
	{Canonical: "d10", Aliases: []string{"d(0.1)", "d (0.1)", "d(v,0.1)", "x(q3=10.0%)", "d0.1"}, Numeric: true},
	{Canonical: "d50", Aliases: []string{"d(0.5)", "d (0.5)", "d(v,0.5)", "x(q3=50.0%)", "d0.5"}, Numeric: true},
	{Canonical: "d90", Aliases: []string{"d(0.9)", "d (0.9)", "d(v,0.9)", "x(q3=90.0%)", "d0.9"}, Numeric: true},
	{Canonical: "span", Aliases: []string{"span"}, Numeric: true},
	{Canonical: "specificSurface", Aliases: []string{"specific surface area", "ssa", "sv"}, Numeric: true},
	{Canonical: "uniformity", Aliases: []string{"uniformity"}, Numeric: true},
	{Canonical: "volumeMean", Aliases: []string{"d[4,3]", "d[4;3]", "volume mean", "vmd"}, Numeric: true},
}
