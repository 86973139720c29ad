package http

import (
	"time"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
)

// --- Request DTOs ---

type vaccineReq struct {
	Name          string `json:"name"          binding:"required,min=1,max=255"`
	Manufacturer  string `json:"manufacturer"  binding:"max=255"`
	BatchTracking bool   `json:"batch_tracking"`
}

type linkedItemReq struct {
	ItemKey string `json:"item_key" binding:"required"`
}

type tierPriceReq struct {
	MinQuantity int     `json:"min_quantity" binding:"gte=1"`
	Price       float64 `json:"price"        binding:"gte=0"`
}

type reminderReq struct {
	Name       string `json:"name"        binding:"max=255"`
	OffsetDays int    `json:"offset_days" binding:"gte=0"`
}

type createReq struct {
	ItemType string `json:"item_type" binding:"required,oneof=service lab product"`
	Code     string `json:"code"      binding:"required,min=1,max=64"`
	Name     string `json:"name"      binding:"required,min=1,max=255"`

	Cost            float64 `json:"cost"             binding:"gte=0"`
	BasePrice       float64 `json:"base_price"       binding:"gte=0"`
	Markup          float64 `json:"markup"           binding:"gte=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`

	CategoryKey         string   `json:"category_key"`
	TaxLevelKey         string   `json:"tax_level_key"`
	TaxLevelValue       *float64 `json:"tax_level_value"`
	Key                 string   `json:"key"`
	DocumentTemplateKey string   `json:"document_template_key"`

	TierPrices []tierPriceReq  `json:"tier_prices" binding:"dive"`
	Species    []string        `json:"species"`
	Reminders  []reminderReq   `json:"reminders"   binding:"dive"`
	Vaccine    *vaccineReq     `json:"vaccine"`
	Linked     []linkedItemReq `json:"linked_items" binding:"dive"`

	Timestamp time.Time `json:"timestamp"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(practiceKey string) catalog.CreateItemInput {
	input := catalog.CreateItemInput{
		PracticeKey:         practiceKey,
		ItemType:            model.ItemType(r.ItemType),
		Code:                r.Code,
		Name:                r.Name,
		Cost:                r.Cost,
		BasePrice:           r.BasePrice,
		Markup:              r.Markup,
		DiscountPercent:     r.DiscountPercent,
		CategoryKey:         r.CategoryKey,
		TaxLevelKey:         r.TaxLevelKey,
		TaxLevelValue:       r.TaxLevelValue,
		Key:                 r.Key,
		DocumentTemplateKey: r.DocumentTemplateKey,
		Species:             r.Species,
		Timestamp:           r.Timestamp,
	}
	for _, t := range r.TierPrices {
		input.TierPrices = append(input.TierPrices, model.TierPrice{MinQuantity: t.MinQuantity, Price: t.Price})
	}
	for _, rem := range r.Reminders {
		input.Reminders = append(input.Reminders, model.ReminderConfig{Name: rem.Name, OffsetDays: rem.OffsetDays})
	}
	if r.Vaccine != nil {
		input.Vaccine = &catalog.VaccineInput{
			Name:          r.Vaccine.Name,
			Manufacturer:  r.Vaccine.Manufacturer,
			BatchTracking: r.Vaccine.BatchTracking,
		}
	}
	for _, li := range r.Linked {
		input.LinkedItems = append(input.LinkedItems, catalog.LinkedItemInput{ItemKey: li.ItemKey})
	}
	return input
}

// ---

type updateReq struct {
	Key string `json:"-"` // populated from URI param

	Name            string   `json:"name"             binding:"omitempty,min=1,max=255"`
	Cost            *float64 `json:"cost"             binding:"omitempty,gte=0"`
	BasePrice       *float64 `json:"base_price"       binding:"omitempty,gte=0"`
	Markup          *float64 `json:"markup"           binding:"omitempty,gte=0"`
	DiscountPercent *float64 `json:"discount_percent" binding:"omitempty,gte=0,lte=100"`

	Timestamp time.Time `json:"timestamp"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput(practiceKey string) catalog.UpdateItemInput {
	return catalog.UpdateItemInput{
		PracticeKey:     practiceKey,
		Key:             r.Key,
		Name:            r.Name,
		Cost:            r.Cost,
		BasePrice:       r.BasePrice,
		Markup:          r.Markup,
		DiscountPercent: r.DiscountPercent,
		Timestamp:       r.Timestamp,
	}
}

// ---

type upsertReq struct {
	createReq

	Active bool `json:"active"`
}

func (r upsertReq) toInput(practiceKey, key string) catalog.UpsertItemInput {
	input := r.createReq.toInput(practiceKey)
	input.Key = key
	return catalog.UpsertItemInput{CreateItemInput: input, Active: r.Active}
}

// ---

type listReq struct {
	ItemType string `form:"item_type" binding:"omitempty,oneof=service lab product"`
	Active   *bool  `form:"active"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput(practiceKey string) catalog.ListItemsInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return catalog.ListItemsInput{
		PracticeKey: practiceKey,
		ItemType:    model.ItemType(r.ItemType),
		Active:      r.Active,
		Limit:       limit,
		Offset:      offset,
	}
}

// --- Response DTOs ---

type vaccineResp struct {
	Key           string    `json:"key"`
	Name          string    `json:"name"`
	Manufacturer  string    `json:"manufacturer"`
	BatchTracking bool      `json:"batch_tracking"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

type linkedItemResp struct {
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
	ItemKey  string `json:"item_key"`
	ItemCode string `json:"item_code"`
}

type categoryResp struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	ItemType string `json:"item_type"`
}

type taxLevelResp struct {
	Key  string  `json:"key,omitempty"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

type tierPriceResp struct {
	MinQuantity int     `json:"min_quantity"`
	Price       float64 `json:"price"`
}

type reminderResp struct {
	Name       string `json:"name"`
	OffsetDays int    `json:"offset_days"`
}

type itemResp struct {
	Key         string  `json:"key"`
	PracticeKey string  `json:"practice_key"`
	ItemType    string  `json:"item_type"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	BasePrice   float64 `json:"base_price"`
	Markup      float64 `json:"markup"`
	Discount    float64 `json:"discount_percent"`

	TierPrices []tierPriceResp `json:"tier_prices,omitempty"`
	Species    []string        `json:"species,omitempty"`
	Reminders  []reminderResp  `json:"reminders,omitempty"`

	Category   *categoryResp    `json:"category,omitempty"`
	TaxLevel   *taxLevelResp    `json:"tax_level,omitempty"`
	Vaccine    *vaccineResp     `json:"vaccine,omitempty"`
	Linked     []linkedItemResp `json:"linked_items,omitempty"`
	Active     bool             `json:"active"`
	CreatedAt  time.Time        `json:"created_at"`
	CreatedBy  string           `json:"created_by"`
	ModifiedAt time.Time        `json:"modified_at"`
	ModifiedBy string           `json:"modified_by"`
}

func newItemResp(item model.CatalogItem) itemResp {
	resp := itemResp{
		Key:         item.Key,
		PracticeKey: item.PracticeKey,
		ItemType:    string(item.ItemType),
		Code:        item.Code,
		Name:        item.Name,
		Cost:        item.Pricing.Cost,
		BasePrice:   item.Pricing.BasePrice,
		Markup:      item.Pricing.Markup,
		Discount:    item.Pricing.DiscountPercent,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
		CreatedBy:   item.CreatedBy,
		ModifiedAt:  item.ModifiedAt,
		ModifiedBy:  item.ModifiedBy,
		Species:     item.Species,
	}
	for _, tp := range item.TierPrices {
		resp.TierPrices = append(resp.TierPrices, tierPriceResp{MinQuantity: tp.MinQuantity, Price: tp.Price})
	}
	for _, rem := range item.Reminders {
		resp.Reminders = append(resp.Reminders, reminderResp{Name: rem.Name, OffsetDays: rem.OffsetDays})
	}
	if item.Category != nil {
		resp.Category = &categoryResp{
			Key:      item.Category.Key,
			Name:     item.Category.Name,
			ItemType: string(item.Category.ItemType),
		}
	}
	if item.TaxLevel != nil {
		resp.TaxLevel = &taxLevelResp{
			Key:  item.TaxLevel.Key,
			Name: item.TaxLevel.Name,
			Rate: item.TaxLevel.Rate,
		}
	}
	if item.Vaccine != nil {
		resp.Vaccine = &vaccineResp{
			Key:           item.Vaccine.Key,
			Name:          item.Vaccine.Name,
			Manufacturer:  item.Vaccine.Manufacturer,
			BatchTracking: item.Vaccine.BatchTracking,
			CreatedAt:     item.Vaccine.CreatedAt,
			ModifiedAt:    item.Vaccine.ModifiedAt,
		}
	}
	for _, li := range item.LinkedItems {
		resp.Linked = append(resp.Linked, linkedItemResp{
			ItemID:   li.ItemID,
			ItemType: string(li.ItemType),
			ItemKey:  li.ItemKey,
			ItemCode: li.ItemCode,
		})
	}
	return resp
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out catalog.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item     itemResp `json:"item"`
	Modified bool     `json:"modified"`
}

func (h *handler) newUpdateResp(out catalog.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item), Modified: out.Modified}
}

type upsertResp struct {
	Item     itemResp `json:"item"`
	Inserted bool     `json:"inserted"`
}

func (h *handler) newUpsertResp(out catalog.UpsertItemOutput) upsertResp {
	return upsertResp{Item: newItemResp(out.Item), Inserted: out.Inserted}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out catalog.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out catalog.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
