package http

import (
	"catalog-api/internal/catalog"
	"catalog-api/internal/model"
)

// --- Request DTOs ---

// itemReq is the wire shape of an Item body. Pointer fields keep
// "absent" distinct from a zero value; required fields must be present
// but may carry any value of the right type.
type itemReq struct {
	Name        *string  `json:"name"        binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       binding:"required"`
	Tax         *float64 `json:"tax"`
}

func (r itemReq) toModel() model.Item {
	return model.Item{
		Name:        *r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Tax:         r.Tax,
	}
}

type readReq struct {
	ItemID string
	Q      *string
}

func (r readReq) toInput() catalog.ReadItemInput {
	return catalog.ReadItemInput{
		ItemID: r.ItemID,
		Q:      r.Q,
	}
}

type createReq struct {
	itemReq
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{Item: r.toModel()}
}

type replaceReq struct {
	itemReq
	ItemID int `json:"-"` // populated from URI param
}

func (r replaceReq) validate() error { return nil }

func (r replaceReq) toInput() catalog.ReplaceItemInput {
	return catalog.ReplaceItemInput{
		ItemID: r.ItemID,
		Item:   r.toModel(),
	}
}

// --- Response DTOs ---
//
// These routes reply with their exact wire shapes, no envelope.

type readResp struct {
	ItemID string  `json:"item_id"`
	Q      *string `json:"q,omitempty"`
}

func (h *handler) newReadResp(out catalog.ReadItemOutput) readResp {
	return readResp{
		ItemID: out.ItemID,
		Q:      out.Q,
	}
}

type createResp struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Price        float64  `json:"price"`
	Tax          *float64 `json:"tax"`
	PriceWithTax *float64 `json:"price_with_tax,omitempty"`
}

func (h *handler) newCreateResp(out catalog.CreateItemOutput) createResp {
	return createResp{
		Name:         out.Item.Name,
		Description:  out.Item.Description,
		Price:        out.Item.Price,
		Tax:          out.Item.Tax,
		PriceWithTax: out.PriceWithTax,
	}
}

type replaceResp struct {
	ItemID      int      `json:"item_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Tax         *float64 `json:"tax"`
}

func (h *handler) newReplaceResp(out catalog.ReplaceItemOutput) replaceResp {
	return replaceResp{
		ItemID:      out.ItemID,
		Name:        out.Item.Name,
		Description: out.Item.Description,
		Price:       out.Item.Price,
		Tax:         out.Item.Tax,
	}
}
