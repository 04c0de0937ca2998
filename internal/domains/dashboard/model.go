package dashboard

import "time"

// Stats are the headline counters at the top of the dashboard.
type Stats struct {
	TotalBooks         int `json:"total_books"`
	AvailableBooks     int `json:"available_books"` // sum of stock across titles
	TotalCategories    int `json:"total_categories"`
	TotalMembers       int `json:"total_members"`
	ActiveMembers      int `json:"active_members"` // members with a borrowing still out
	TotalBorrowings    int `json:"total_borrowings"`
	ActiveBorrowings   int `json:"active_borrowings"`
	ReturnedBorrowings int `json:"returned_borrowings"`
	BooksOut           int `json:"books_out"` // copies currently lent, by line-item quantity
}

// RecentBorrowing is one row of the recent-activity feed.
type RecentBorrowing struct {
	ID         string   `json:"id"`
	MemberName string   `json:"member_name"`
	BookTitles []string `json:"book_titles"`
	BorrowDate string   `json:"borrow_date"`
	Status     string   `json:"status"`
}

// TopBook ranks a title by copies in completed borrowings.
type TopBook struct {
	BookID    string `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Borrowed  int    `json:"borrowed"`
}

// MonthlyCount is one bar of the borrowings-per-month chart. Month is
// formatted "Jan 2006".
type MonthlyCount struct {
	Month      string `json:"month"`
	Borrowings int    `json:"borrowings"`
}

// StatusSlice is one wedge of the status pie, color included so the
// frontend renders consistently.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// CategoryCount ranks a category by copies lent out and returned,
// joined through its books.
type CategoryCount struct {
	Name     string `json:"name"`
	Borrowed int    `json:"borrowed"`
}

// Data is the full dashboard payload, cached as a unit.
type Data struct {
	Stats            Stats             `json:"stats"`
	RecentBorrowings []RecentBorrowing `json:"recent_borrowings"`
	TopBooks         []TopBook         `json:"top_books"`
	MonthlyTrend     []MonthlyCount    `json:"monthly_trend"`
	StatusBreakdown  []StatusSlice     `json:"status_breakdown"`
	BooksByCategory  []CategoryCount   `json:"books_by_category"`
	LastUpdated      time.Time         `json:"last_updated"`
}
