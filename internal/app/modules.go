package app

import (
	"github.com/vk/composergo/internal/widget"
	"github.com/vk/composergo/modules/banner"
	"github.com/vk/composergo/modules/card"
	"github.com/vk/composergo/modules/column"
	"github.com/vk/composergo/modules/greeting"
	"github.com/vk/composergo/modules/text"
)

// coreModules is the definitive list of all widget modules that are compiled
// into the composergo binary.
var coreModules = []widget.Module{
	&text.Module{},
	&greeting.Module{},
	&banner.Module{},
	&card.Module{},
	&column.Module{},
}
