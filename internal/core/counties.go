package core

// County is a served area with its own landing page. The list is static site
// content, not backend data.
type County struct {
	Slug  string
	Name  string
	Blurb string
}

var Counties = []County{
	{Slug: "nairobi", Name: "Nairobi", Blurb: "Daily residential and commercial pickups across all Nairobi estates."},
	{Slug: "kiambu", Name: "Kiambu", Blurb: "Scheduled collection routes covering Ruiru, Thika, Juja and Kikuyu."},
	{Slug: "machakos", Name: "Machakos", Blurb: "Weekly collection for households and businesses in Machakos town and Athi River."},
	{Slug: "kajiado", Name: "Kajiado", Blurb: "Serving Kitengela, Ongata Rongai and Ngong with reliable weekly pickups."},
	{Slug: "nakuru", Name: "Nakuru", Blurb: "Commercial and estate collection across Nakuru city and Naivasha."},
}

// CountyBySlug returns the served county for a landing-page slug, or nil.
func CountyBySlug(slug string) *County {
	for i := range Counties {
		if Counties[i].Slug == slug {
			return &Counties[i]
		}
	}
	return nil
}
