// Package advisor - Default dialogue script and category recommendations
package advisor

import (
	"strings"

	"shipwaste/core/types"
	errs "shipwaste/internal/errors"
)

// DefaultFlow returns the built-in advisor script: a product catalog
// browser, a per-category recommendation node, and a contact node.
func DefaultFlow() *Flow {
	backToCatalog := []Edge{{Label: "Back to products", Next: NodeCatalog}}
	backToStart := []Edge{{Label: "Back to start", Next: NodeStart}}

	nodes := []Node{
		{
			ID:   NodeStart,
			Text: "Hi! I can help you cut packaging waste based on your results. What do you need?",
			Edges: []Edge{
				{Label: "Product catalog", Next: NodeCatalog},
				{Label: "Personalized recommendation", Next: NodeRecommendation},
				{Label: "Contact support", Next: NodeContact},
			},
		},
		{
			ID:   NodeCatalog,
			Text: "Sustainable packaging comes in different forms: honeycomb padded mailers, paper mailers, honeycomb paper, kraft tape. What would you like to learn about?",
			Edges: []Edge{
				{Label: "Outer packaging", Next: NodeOuterPackaging},
				{Label: "Inner packaging", Next: NodeInnerPackaging},
				{Label: "Product wrapping and containers", Next: NodeWrapping},
				{Label: "Sealing and labeling", Next: NodeSealing},
				{Label: "Inserts and extras", Next: NodeInserts},
				{Label: "Back", Next: NodeStart},
			},
		},
		{
			ID: NodeOuterPackaging,
			Text: "Outer packaging protects your product during shipping while staying eco-friendly:\n" +
				"- Honeycomb mailers: paper-based padded mailers replacing plastic bubble mailers; recyclable, good for jewelry, accessories, clothing\n" +
				"- Compostable mailers: cornstarch or PLA, decompose naturally in place of poly mailers\n" +
				"- Cardboard boxes: sturdy, biodegradable, suited to fragile decor or art\n" +
				"- Rigid paper mailers: plastic-free option for prints, books, documents\n" +
				"- Paper envelopes: lightweight kraft mailers for flat items like cards and stickers",
			Edges: backToCatalog,
		},
		{
			ID: NodeInnerPackaging,
			Text: "Inner packaging cushions items without plastic:\n" +
				"- Honeycomb packing paper: expands into a flexible wrap replacing bubble wrap\n" +
				"- Shredded kraft paper: recycled cushioning for fragile items\n" +
				"- Tissue paper: presentation plus protection for jewelry and clothing\n" +
				"- Mushroom packaging: compostable mycelium forms for glass or ceramics",
			Edges: backToCatalog,
		},
		{
			ID: NodeWrapping,
			Text: "Product wrapping and containers hold or present items sustainably:\n" +
				"- Glassine bags: translucent and biodegradable, for jewelry, prints, soaps\n" +
				"- Kraft paper wrap: recyclable wrap for clothing or small home goods\n" +
				"- Aluminum or tin containers: reusable and recyclable, for candles and beauty products\n" +
				"- Glass jars and bottles: plastic-free for bath salts, scrubs, beverages\n" +
				"- Cardboard tubes and boxes: recyclable carriers for art, posters, apparel",
			Edges: backToCatalog,
		},
		{
			ID: NodeSealing,
			Text: "Sealing and labeling without plastic:\n" +
				"- Kraft paper tape: water-activated and fully recyclable\n" +
				"- Compostable labels: sugarcane or PLA film, biodegradable\n" +
				"- Paper stickers: recyclable labels with soy-based inks\n" +
				"- Hemp twine: replaces plastic string",
			Edges: backToCatalog,
		},
		{
			ID: NodeInserts,
			Text: "Inserts and extras that stay sustainable:\n" +
				"- Thank-you cards from post-consumer or plantable seed paper\n" +
				"- Biodegradable paper tags\n" +
				"- Paper crinkle fill in place of plastic confetti\n" +
				"- QR code cards linking to digital care instructions",
			Edges: backToCatalog,
		},
		{
			ID:      NodeRecommendation,
			Dynamic: true,
			Edges:   backToStart,
		},
		{
			ID:    NodeContact,
			Text:  "You can reach us for help with your transition at cleanchoicestogether@gmail.com",
			Edges: backToStart,
		},
	}

	f, err := NewFlow(NodeStart, nodes)
	if err != nil {
		panic(err) // the built-in script is covered by tests
	}
	return f
}

// categoryRecommendations maps each business category to its packaging
// swap suggestions.
var categoryRecommendations = map[types.Category][]string{
	types.CategoryJewelry: {
		"Switch plastic bubble mailers to honeycomb padded paper mailers (curbside recyclable)",
		"Wrap items in honeycomb packing paper instead of plastic bubble wrap",
		"Use glassine bags instead of plastic zip bags for earrings and charms",
		"Seal with kraft paper tape instead of plastic tape",
	},
	types.CategoryClothing: {
		"Replace poly mailers with recycled paper or compostable mailers",
		"Wrap garments in kraft or tissue instead of poly sleeves",
		"Use paper stickers with soy inks instead of vinyl logo stickers",
	},
	types.CategoryHomeLiving: {
		"Use cardboard boxes sized to the product to avoid excess filler",
		"Pad with shredded kraft or honeycomb wrap instead of air pillows",
		"Use paper-based tape and include a reuse note on the box",
	},
	types.CategoryArtPrints: {
		"Ship in rigid paper mailers or cardboard tubes instead of bubble mailers",
		"Protect prints with glassine sleeves instead of plastic sleeves",
		"Add corner protectors folded from kraft cardstock, no foam corners",
	},
	types.CategoryBags: {
		"Use recycled kraft paper wrap instead of poly dust bags",
		"Seal boxes with water-activated kraft tape",
		"Swap plastic hang tags for paper swing tags and hemp twine",
	},
	types.CategoryBathBeauty: {
		"Use tins or glass jars instead of plastic containers where possible",
		"Cushion jars with honeycomb wrap or crinkle paper, not bubble wrap",
		"Use compostable labels instead of glossy plastic labels",
	},
	types.CategoryToys: {
		"Use cardboard mailers or boxes sized tight to reduce filler",
		"Replace plastic air pillows with kraft paper fill",
		"Avoid polybags around soft toys; wrap in tissue instead",
	},
	types.CategoryBooksMedia: {
		"Use rigid cardboard mailers sized to fit instead of bubble mailers",
		"Pad edges with folded kraft paper strips, not foam blocks",
		"Seal with paper tape so the package recycles as cardboard",
	},
	types.CategoryFood: {
		"Use molded fiber or mushroom packaging instead of foam or plastic shells",
		"Use paper-based tamper seals instead of plastic shrink bands",
		"Choose food-safe paper-based filler where possible",
	},
	types.CategoryStationery: {
		"Ship in honeycomb or rigid mailers instead of bubble mailers",
		"Use glassine sleeves for cards and stickers instead of poly sleeves",
		"Swap the poly logo mailer for recycled kraft with a paper sticker seal",
	},
}

// RecommendationFor renders the dynamic recommendation text for a
// category. A category must already be selected; an unset or unknown
// category is an input error the caller surfaces as a prompt.
func RecommendationFor(cat types.Category) (string, error) {
	recs, ok := categoryRecommendations[cat]
	if !ok {
		return "", errs.Input("select a business category and run the analysis first")
	}
	var b strings.Builder
	b.WriteString("Based on your business category and your results, here are recommendations for you:\n")
	for _, r := range recs {
		b.WriteString("- ")
		b.WriteString(r)
		b.WriteString("\n")
	}
	return b.String(), nil
}
