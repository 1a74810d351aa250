package knowledge

// Category names a hazard domain in the knowledge base.
type Category string

const (
	CategoryElectrical   Category = "ELECTRICAL"
	CategoryPlumbing     Category = "PLUMBING"
	CategoryDrainage     Category = "DRAINAGE"
	CategoryLocksmith    Category = "LOCKSMITH"
	CategoryGlazing      Category = "GLAZING"
	CategoryVehicle      Category = "VEHICLE"
	CategoryCoreProtocol Category = "CORE_PROTOCOL"
)

// QA is a curated question with its answer.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Entry is one category of safety content together with the trigger
// keywords that select it.
type Entry struct {
	Category Category `json:"category"`
	Triggers []string `json:"triggers"`
	Tips     []string `json:"tips"`
	QA       []QA     `json:"qa"`
}

// Match is the outcome of category selection for a query.
type Match struct {
	Category Category
	Hits     int
}

// scoredQA is a Q&A pair with its overlap score against a query.
type scoredQA struct {
	qa    QA
	score int
}

// --- UseCase Inputs ---

type SearchInput struct {
	Query string
}

// --- UseCase Outputs ---

type SearchOutput struct {
	Found    bool
	Category Category
	Text     string
}

type ListCategoriesOutput struct {
	Entries []Entry
}
