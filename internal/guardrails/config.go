package guardrails

// HighStakesKeywords flags medical, legal, and financial topics the tools
// refuse to decide. Stems ("diagnos", "pregnan") match their inflections.
var HighStakesKeywords = []string{
	// medical
	"medical",
	"diagnos",
	"symptom",
	"surgery",
	"medication",
	"dose",
	"pregnan",
	"chest pain",
	"suicid",
	"self-harm",
	"therapy",
	// legal
	"legal",
	"law",
	"lawsuit",
	"attorney",
	"contract",
	"court",
	"divorce",
	"custody",
	"immigration",
	"criminal",
	// financial
	"investment",
	"investing",
	"stocks",
	"crypto",
	"loan",
	"mortgage",
	"bankrupt",
	"tax",
	"irs",
	"debt",
	"retirement",
}

// BestOverallPhrases flags requests to optimize across several criteria.
var BestOverallPhrases = []string{
	"best overall",
	"overall best",
	"which is best",
	"what's best",
	"optimize",
	"maximize",
	"most optimal",
	"perfect",
	"ideal",
	"rank",
	"score",
	"weigh",
	"compare everything",
	"pros and cons",
	"multiple criteria",
}

// Config holds the keyword tables an Evaluator checks against.
type Config struct {
	HighStakes  []string
	BestOverall []string
}

func DefaultConfig() Config {
	return Config{
		HighStakes:  HighStakesKeywords,
		BestOverall: BestOverallPhrases,
	}
}
