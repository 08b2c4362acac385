/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package encoder

import (
	"strings"

	"github.com/asgardeo/samlgate/internal/system/utils"
)

// queryBuilder appends query parameters to a base URL, tracking whether a
// parameter separator has already been emitted so that the first appended
// parameter uses "?" and all subsequent ones use "&". Values must be passed
// already percent-encoded; they are written verbatim.
type queryBuilder struct {
	sb        strings.Builder
	hasParams bool
}

// newQueryBuilder creates a query builder over the given base URL. A base URL
// that cannot be parsed is treated as carrying no query parameters.
func newQueryBuilder(baseURL string) *queryBuilder {
	qb := &queryBuilder{
		hasParams: utils.HasQueryParams(baseURL),
	}
	qb.sb.WriteString(baseURL)
	return qb
}

// Append writes one name=value pair with the correct separator.
func (qb *queryBuilder) Append(name, encodedValue string) {
	if qb.hasParams {
		qb.sb.WriteString("&")
	} else {
		qb.sb.WriteString("?")
		qb.hasParams = true
	}
	qb.sb.WriteString(name)
	qb.sb.WriteString("=")
	qb.sb.WriteString(encodedValue)
}

// String returns the assembled URL.
func (qb *queryBuilder) String() string {
	return qb.sb.String()
}
