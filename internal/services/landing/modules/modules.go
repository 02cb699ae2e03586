// Package modules lists the feature modules mounted by the landing service.
package modules

import (
	"github.com/aceleraclinicas/landing/internal/services/landing/module"
	"github.com/aceleraclinicas/landing/internal/services/landing/modules/assets"
	"github.com/aceleraclinicas/landing/internal/services/landing/modules/thankyou"
)

// Default returns the stable module set: static assets and the thank-you pages.
func Default(pages thankyou.Config) []module.Module {
	return []module.Module{
		assets.New(),
		thankyou.New(pages),
	}
}
