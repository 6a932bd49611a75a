package catalog

// Challenge is a sustainability challenge users can join.
type Challenge struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     ChallengeCategory `json:"category"`
	Difficulty   Difficulty        `json:"difficulty"`
	Impact       Impact            `json:"impact"`
	Duration     string            `json:"duration"`
	Participants int               `json:"participants"`
}

// CategoryLabel returns the category used by list filters.
func (c Challenge) CategoryLabel() string { return string(c.Category) }

// SearchFields returns the title and description matched by search queries.
func (c Challenge) SearchFields() (string, string) { return c.Title, c.Description }

// ActiveChallenge is a challenge the user is currently working on.
// It is modeled separately from Challenge; the same ID may appear in both.
type ActiveChallenge struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    ChallengeCategory `json:"category"`
	Difficulty  Difficulty        `json:"difficulty"`
	Impact      Impact            `json:"impact"`
	Duration    string            `json:"duration"`
	Progress    int               `json:"progress"`
	DaysLeft    int               `json:"days_left"`
}

// CategoryLabel returns the category used by list filters.
func (c ActiveChallenge) CategoryLabel() string { return string(c.Category) }

// SearchFields returns the title and description matched by search queries.
func (c ActiveChallenge) SearchFields() (string, string) { return c.Title, c.Description }

// CompletedChallenge is a challenge the user has finished.
type CompletedChallenge struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Category      ChallengeCategory `json:"category"`
	Difficulty    Difficulty        `json:"difficulty"`
	Impact        Impact            `json:"impact"`
	CompletedDate string            `json:"completed_date"`
	ImpactSaved   string            `json:"impact_saved"`
}

// CategoryLabel returns the category used by list filters.
func (c CompletedChallenge) CategoryLabel() string { return string(c.Category) }

// SearchFields returns the title and description matched by search queries.
func (c CompletedChallenge) SearchFields() (string, string) { return c.Title, c.Description }

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CommunityEvent is a local environmental event.
type CommunityEvent struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Location     string        `json:"location"`
	Category     EventCategory `json:"category"`
	Participants int           `json:"participants"`
	Coordinates  Coordinates   `json:"coordinates"`
}

// CategoryLabel returns the category used by list filters.
func (e CommunityEvent) CategoryLabel() string { return string(e.Category) }

// SearchFields returns the title and description matched by search queries.
func (e CommunityEvent) SearchFields() (string, string) { return e.Title, e.Description }

// Product is a marketplace listing.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	ImageRef    string          `json:"image_ref"`
	Category    ProductCategory `json:"category"`
	EcoScore    float64         `json:"eco_score"`
	Badges      []string        `json:"badges"`
}

// CategoryLabel returns the category used by list filters.
func (p Product) CategoryLabel() string { return string(p.Category) }

// SearchFields returns the text matched by search queries. Products match on name.
func (p Product) SearchFields() (string, string) { return p.Name, p.Description }

// Popularity is the ranking key of the default marketplace ordering.
func (p Product) Popularity() float64 {
	return p.Rating * float64(p.Reviews)
}

// UserStats are the headline numbers on the profile page.
type UserStats struct {
	CarbonSaved         string `json:"carbon_saved"`
	ActiveChallenges    int    `json:"active_challenges"`
	CompletedChallenges int    `json:"completed_challenges"`
	EcoPoints           int    `json:"eco_points"`
	Trees               int    `json:"trees"`
	WaterSaved          string `json:"water_saved"`
}

// UserProfile is the sample signed-in user.
type UserProfile struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Location  string    `json:"location"`
	JoinDate  string    `json:"join_date"`
	AvatarRef string    `json:"avatar_ref"`
	Stats     UserStats `json:"stats"`
}

// Badge is an achievement shown on the profile.
type Badge struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MonthlyImpact is one point of the profile's carbon history chart.
type MonthlyImpact struct {
	Month    string  `json:"month"`
	CarbonKg float64 `json:"carbon_kg"`
}

// Activity is an entry in the profile activity feed.
type Activity struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	When  string `json:"when"`
}
