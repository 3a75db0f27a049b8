// mutate.go
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

package services

import (
	"context"

	"gorm.io/gorm"
)

type scope = func(*gorm.DB) *gorm.DB

// findByID loads one row of T by primary key.
func findByID[T any](ctx context.Context, db *gorm.DB, op, id string, scopes ...scope) (*T, error) {
	var row T
	if err := reader(ctx, db, op).Scopes(scopes...).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// updateByID applies a partial update to the row of T with the given id,
// always refreshing updated_at. conds further restrict the matched row. Zero
// matched rows is ErrNotFound and nothing is written.
func updateByID[T any](ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}, conds ...scope) error {
	fields["updated_at"] = stamp(db)

	var model T
	res := db.WithContext(ctx).Model(&model).Scopes(conds...).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
