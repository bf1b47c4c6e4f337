package course

import "github.com/volatiletech/null/v8"

// Defaults is the catalog seeded on first start.
var Defaults = []Course{
	{Name: "O LEVEL", Duration: "12 months", Fee: 18200, Description: null.StringFrom("DOEACC O Level Computer Course")},
	{Name: "DIT", Duration: "12 months", Fee: 16000, Description: null.StringFrom("Diploma in Information Technology")},
	{Name: "TALLY PRIME WITH EXCEL", Duration: "3 months", Fee: 7200, Description: null.StringFrom("Tally Prime with Advanced Excel")},
	{Name: "CCC", Duration: "3 months", Fee: 3600, Description: null.StringFrom("Course on Computer Concepts (NIELIT)")},
	{Name: "ADCA", Duration: "12 months", Fee: 14000, Description: null.StringFrom("Advanced Diploma in Computer Applications")},
	{Name: "DCA", Duration: "6 months", Fee: 7200, Description: null.StringFrom("Diploma in Computer Applications")},
	{Name: "ADVANCE EXCEL", Duration: "2 months", Fee: 4000, Description: null.StringFrom("Advanced Microsoft Excel")},
	{Name: "PYTHON", Duration: "3 months", Fee: 4500, Description: null.StringFrom("Python Programming Course")},
	{Name: "IOT", Duration: "4 months", Fee: 4500, Description: null.StringFrom("Internet of Things Fundamentals")},
	{Name: "DTP", Duration: "3 months", Fee: 4500, Description: null.StringFrom("Desktop Publishing")},
	{Name: "C++", Duration: "2 months", Fee: 3500, Description: null.StringFrom("C++ Programming")},
	{Name: "C LANGUAGE", Duration: "2 months", Fee: 4500, Description: null.StringFrom("C Programming Language")},
	{Name: "HINDI/ENGLISH TYPING", Duration: "2 months", Fee: 3200, Description: null.StringFrom("Hindi/English Typing Course")},
}
