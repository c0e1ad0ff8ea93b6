package site

type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type Page struct {
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline,omitempty"`
	Sections []Section `json:"sections"`
}

var homePage = Page{
	Title:   "PS Foundation",
	Tagline: "Serving home-style meals across Charotar villages",
	Sections: []Section{
		{
			Heading: "Tiffin Seva",
			Body: "Daily lunch and dinner tiffins delivered to elderly residents " +
				"and working families, billed on simple monthly subscriptions.",
		},
		{
			Heading: "Get Involved",
			Body: "Volunteer for a delivery route or sponsor a month of meals " +
				"for a family in need.",
		},
	},
}

var aboutPage = Page{
	Title: "About PS Foundation",
	Sections: []Section{
		{
			Heading: "Who We Are",
			Body: "A community kitchen run by volunteers from Anand and Nadiad, " +
				"cooking and delivering fresh tiffins twice a day since 2019.",
		},
		{
			Heading: "How Billing Works",
			Body: "Subscriptions are priced per region on a 30-day cycle, with a " +
				"combined rate when both lunch and dinner are ordered and a " +
				"daily rate for the remaining days.",
		},
	},
}
