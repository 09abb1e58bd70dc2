package helpcenter

// defaultCatalog is the article table shipped with the site. It backs the
// hero dropdown and the command palette when no page scan is available.
var defaultCatalog = []Record{
	{Title: "Creating a Study in Userology", Reference: "article_25457016697629.html", Category: "Study Setup"},
	{Title: "Configuring the AI Moderator in Userology", Reference: "article_25562045316637.html", Category: "Study Settings"},
	{Title: "Configuring Question Probes in Userology", Reference: "article_25562114444061.html", Category: "Study Settings"},
	{Title: "Overview of Managing Study Respondents in Userology", Reference: "article_25561689734941.html", Category: "Respondent Management"},
	{Title: "How to Manage Respondent Participation in Userology Studies", Reference: "article_25561782334749.html", Category: "Respondent Management"},
	{Title: "Creating and Managing Quotes in Userology", Reference: "article_25562126820125.html", Category: "Responses and Recordings"},
	{Title: "Creating and Downloading Clips, files in Userology", Reference: "article_25916497212701.html", Category: "Responses and Recordings"},
	{Title: "Previewing Recorded Responses in Userology", Reference: "article_25562210431261.html", Category: "Responses and Recordings"},
	{Title: "Exporting Recorded Responses from Userology", Reference: "article_25562216141213.html", Category: "Responses and Recordings"},
	{Title: "Understanding Qualitative results section in Userology", Reference: "article_25916667142045.html", Category: "Results and Reports"},
	{Title: "Understanding the Dashboard in Userology", Reference: "article_25562265024797.html", Category: "Results and Reports"},
	{Title: "Viewing AI Summaries in Userology", Reference: "article_25562272476829.html", Category: "Results and Reports"},
	{Title: "QnA Results Section in Userology", Reference: "article_25562947923741.html", Category: "Results and Reports"},
	{Title: "Managing Tags in Userology", Reference: "article_25562292368669.html", Category: "Results and Reports"},
	{Title: "Overview of Advanced Tools in Userology", Reference: "article_25562312351389.html", Category: "Advanced Tools"},
	{Title: "Linking Your Study to Respondent Sources", Reference: "article_25562330763805.html", Category: "Advanced Tools"},
	{Title: "Sharing Your Study with Others in Userology", Reference: "article_25562367390237.html", Category: "Advanced Tools"},
	{Title: "Embedding Userology in Your Website", Reference: "article_25562389245085.html", Category: "Advanced Tools"},
	{Title: "Managing Organization and Team Settings in Userology", Reference: "article_25562407594781.html", Category: "Organization & Team"},
	{Title: "Team Collaboration and User Roles in Userology", Reference: "article_25562457277597.html", Category: "Organization & Team"},
	{Title: "Managing Notifications and Preferences", Reference: "article_25562483675165.html", Category: "Organization & Team"},
	{Title: "Userology Billing and Plans", Reference: "article_25562500326813.html", Category: "Billing"},
	{Title: "Onboarding with Userology", Reference: "article_25456988151453.html", Category: "Getting Started"},
	{Title: "Understanding Userology Basics", Reference: "article_25457033877533.html", Category: "Getting Started"},
}

// DefaultCatalog returns a copy of the shipped article table in its
// published order.
func DefaultCatalog() []Record {
	rs := make([]Record, len(defaultCatalog))
	copy(rs, defaultCatalog)
	return rs
}
