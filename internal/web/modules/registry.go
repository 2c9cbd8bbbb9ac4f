// Package modules registers the stable web feature modules.
package modules

import (
	module "github.com/louisbranch/inkwell/internal/web/module"
	"github.com/louisbranch/inkwell/internal/web/modules/auth"
	"github.com/louisbranch/inkwell/internal/web/modules/pages"
	"github.com/louisbranch/inkwell/internal/web/modules/posts"
)

// Default returns the stable web modules in mount order.
func Default() []module.Module {
	return []module.Module{
		auth.New(),
		posts.New(),
		pages.New(),
	}
}
