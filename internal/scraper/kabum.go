package scraper

// KabumSelectors locates the walked elements in kabum.com.br markup. The
// store renames its utility classes on redesigns; these are the stable
// semantic ones.
func KabumSelectors() Selectors {
	return Selectors{
		ListingReady: "main#listing",
		Card:         "article.productCard",
		CardName:     "span.nameCard",
		CardLink:     "a.productLink",
		CardImage:    "img.imageCard",

		DetailName:   "h1#titleProduct",
		DetailPrice:  "h4#blocoValores, h4.finalPrice",
		DetailDesc:   "#description",
		DetailTech:   "#technicalInfoSection, #characteristics",
		DetailRating: "div.ratingStars",
		OutOfStock:   ".unavailableText, #stockUnavailable",

		Next:         "li.next a, a.nextLink",
		NextDisabled: "li.next.disabled, a.nextLink[aria-disabled='true']",
	}
}
