package metrics

// seedSnapshot returns the baseline dashboard values. They are fixed
// demo figures, not derived from the catalog.
func seedSnapshot() Snapshot {
	return Snapshot{
		TotalProducts:  245,
		ActiveProducts: 198,
		TotalUsers:     1234,
		TotalRevenue:   45231,
		SalesSeries: []SalesPoint{
			{Month: "Jan", Sales: 4000, Products: 240},
			{Month: "Feb", Sales: 3000, Products: 139},
			{Month: "Mar", Sales: 2000, Products: 980},
			{Month: "Apr", Sales: 2780, Products: 390},
			{Month: "May", Sales: 1890, Products: 480},
			{Month: "Jun", Sales: 2390, Products: 380},
			{Month: "Jul", Sales: 3490, Products: 430},
			{Month: "Aug", Sales: 4000, Products: 240},
			{Month: "Sep", Sales: 3000, Products: 139},
			{Month: "Oct", Sales: 2000, Products: 980},
			{Month: "Nov", Sales: 2780, Products: 390},
			{Month: "Dec", Sales: 1890, Products: 480},
		},
		Categories: []CategoryShare{
			{Name: "Electronics", Value: 35, Color: "hsl(var(--chart-1))"},
			{Name: "Clothing", Value: 25, Color: "hsl(var(--chart-2))"},
			{Name: "Home & Garden", Value: 20, Color: "hsl(var(--chart-3))"},
			{Name: "Sports", Value: 12, Color: "hsl(var(--chart-4))"},
			{Name: "Books", Value: 8, Color: "hsl(var(--chart-5))"},
		},
		RecentActivities: []Activity{},
	}
}
