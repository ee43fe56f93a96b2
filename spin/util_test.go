// Copyright 2025 The GWPopulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spin

import "github.com/lucymthomas/gwpopulation/array"

func b() array.Backend { return array.Current() }
