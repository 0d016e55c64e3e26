/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package phase

import (
	"log/slog"
	"reflect"

	"dirpx.dev/objmap/accessor"
	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/config"
)

// NewPropertyPhase creates an apis.Phase that discovers getter/setter pairs.
func NewPropertyPhase() apis.Phase {
	return propertyPhase{}
}

// propertyPhase pairs every parameterless method of *T with the counterpart
// named by SetterFor. Methods promoted through embedding take part.
// Candidates without a matching counterpart are dropped.
type propertyPhase struct{}

// Ensure propertyPhase implements apis.Phase.
var _ apis.Phase = propertyPhase{}

// Discover emits a Property accessor per matched pair, in method-name order.
func (propertyPhase) Discover(t reflect.Type, cfg apis.Config, emit func(apis.Accessor)) error {
	log := config.Logger(cfg)
	pt := reflect.PointerTo(t)
	for i := 0; i < pt.NumMethod(); i++ {
		getter := pt.Method(i)
		if getter.Type.NumIn() != 1 {
			continue
		}
		name, ok := SetterFor(getter.Name)
		if !ok {
			continue
		}
		if name == getter.Name {
			log.Debug("property candidate dropped",
				slog.String("type", t.String()),
				slog.String("method", getter.Name),
				slog.String("reason", "counterpart is the method itself"))
			continue
		}
		setter, ok := pt.MethodByName(name)
		if !ok {
			log.Debug("property candidate dropped",
				slog.String("type", t.String()),
				slog.String("method", getter.Name),
				slog.String("reason", "no method "+name))
			continue
		}
		p, ok := accessor.NewProperty(AttributeKey(getter.Name), t, getter, setter, cfg)
		if !ok {
			log.Debug("property candidate dropped",
				slog.String("type", t.String()),
				slog.String("method", getter.Name),
				slog.String("reason", "signature mismatch with "+name))
			continue
		}
		emit(p)
	}
	return nil
}
