// main.go
//
// Legal-aid data service: constitution, Q&A forum, case management and document templates
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of legalaid-api.
// legalaid-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// legalaid-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with legalaid-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Command healthcheck is the container HEALTHCHECK probe. It exits 1 when the
// database or the identity provider is unreachable, 2 when it cannot start.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/database"
	"github.com/localnerve/legalaid-api/internal/services"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Second, "overall probe timeout")
	quiet := flag.Bool("quiet", false, "print nothing; report through the exit code only")
	flag.Parse()

	os.Exit(probe(*timeout, *quiet))
}

func probe(timeout time.Duration, quiet bool) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: %v\n", err)
		return 2
	}

	db, err := database.Connect(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: database: %v\n", err)
		return 1
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := services.HealthCheck(ctx, cfg, db)
	if !quiet {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
	}

	if result.Status != "healthy" {
		return 1
	}
	return 0
}
