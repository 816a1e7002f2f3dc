package impl

import (
	"time"

	"warranty/internal/domain/entity"
	"warranty/internal/domain/expiry"
	"warranty/internal/usecase"
)

const isoDateLayout = "2006-01-02"

// newWarrantyView computes the display fields of w as of today.
func newWarrantyView(w *entity.Warranty, today time.Time) *usecase.WarrantyView {
	info := expiry.Classify(w, today)

	view := &usecase.WarrantyView{
		Warranty:        w,
		Status:          newStatusView(info, today),
		ServicesLabel:   w.ServicesProvided.Label(),
		ProductExpiries: make([]string, 0, len(w.Products)),
		Location:        w.Location(),
	}

	for _, p := range w.Products {
		if exp, ok := expiry.ProductExpiry(p); ok {
			view.ProductExpiries = append(view.ProductExpiries, expiry.FormatDate(&exp))
		} else {
			view.ProductExpiries = append(view.ProductExpiries, expiry.FormatDate(nil))
		}
	}

	if exp, ok := expiry.InstallationExpiry(w); ok {
		view.InstallationExpiry = expiry.FormatDate(&exp)
	}
	if w.ServicesProvided.Install {
		view.BuildingLabel = w.BuildingLabel()
	}

	return view
}

func newStatusView(info entity.StatusInfo, today time.Time) usecase.StatusView {
	view := usecase.StatusView{
		Code:             info.Status,
		Label:            info.Status.Label(),
		Color:            info.Color,
		ExpiresOnDisplay: expiry.FormatDate(&info.ExpiresOn),
		DaysRemaining:    expiry.DaysRemaining(info, today),
	}
	if !info.ExpiresOn.Equal(expiry.NeverExpires) {
		view.ExpiresOn = info.ExpiresOn.Format(isoDateLayout)
	}

	return view
}
