package validity

// ConstraintLeadIns are the accepted openings of a constraint sentence.
var ConstraintLeadIns = []string{"i must", "i can’t", "i can't"}

// ScenarioLeadIns are the accepted openings of a scenario sentence.
var ScenarioLeadIns = []string{"when"}

// RegretLeadIns are the accepted openings of a regret-test sentence.
var RegretLeadIns = []string{"if"}

// ConcreteNouns make a constraint measurable. A digit counts too.
var ConcreteNouns = []string{
	// time / quantity
	"minute",
	"minutes",
	"hour",
	"hours",
	"day",
	"days",
	"week",
	"weeks",
	"month",
	"months",
	"year",
	"years",
	"deadline",
	"due",
	"date",
	"time",
	"today",
	"tomorrow",
	// money
	"dollar",
	"dollars",
	"usd",
	"budget",
	"price",
	"cost",
	"fee",
	"payment",
	// number / count
	"number",
	"limit",
	"max",
	"minimum",
	"maximum",
	// features / tools / platforms
	"offline",
	"iphone",
	"ipad",
	"android",
	"windows",
	"mac",
	"web",
	"browser",
	"app",
	"tool",
	"api",
	"sync",
	"export",
	"import",
	"pdf",
	"calendar",
	"email",
	"notion",
	"airtable",
	"google",
	"apple",
	// location / person
	"home",
	"office",
	"school",
	"work",
	"client",
	"boss",
	"team",
	"partner",
	"family",
	"person",
	"location",
}

// TriggerPhrases mark a scenario as having a testable trigger condition.
var TriggerPhrases = []string{"more than", "less than", "at least", "within", "before", "after"}

// ConsequenceVerbs make a regret test concrete.
var ConsequenceVerbs = []string{"lose", "miss", "pay", "exceed", "break", "fail", "cancel", "refund", "delay"}
