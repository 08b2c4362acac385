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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

func (suite *InMemoryCacheTestSuite) TestNewInMemoryCache() {
	testCases := []struct {
		name           string
		enabled        bool
		size           int
		ttl            time.Duration
		evictionPolicy evictionPolicy
	}{
		{"EnabledCache", true, 100, time.Second * 60, evictionPolicyLRU},
		{"DisabledCache", false, 100, time.Second * 60, evictionPolicyLRU},
		{"LFUEvictionPolicy", true, 100, time.Second * 60, evictionPolicyLFU},
		{"ZeroSize", true, 0, time.Second * 60, evictionPolicyLRU},
		{"ZeroTTL", true, 100, 0, evictionPolicyLRU},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			cache := newInMemoryCache[string](tc.name, tc.enabled, tc.size, tc.ttl, tc.evictionPolicy)

			assert.NotNil(t, cache)
			assert.Equal(t, tc.enabled, cache.IsEnabled())
			assert.Equal(t, tc.name, cache.GetName())

			stats := cache.GetStats()
			assert.Equal(t, tc.enabled, stats.Enabled)

			if tc.enabled {
				assert.Equal(t, 0, stats.Size)

				expectedSize := tc.size
				if expectedSize <= 0 {
					expectedSize = defaultCacheSize
				}
				assert.Equal(t, expectedSize, stats.MaxSize)
			}
		})
	}
}

func (suite *InMemoryCacheTestSuite) TestSetAndGet() {
	for _, policy := range []evictionPolicy{evictionPolicyLRU, evictionPolicyLFU} {
		suite.T().Run(string(policy), func(t *testing.T) {
			cache := newInMemoryCache[string]("metadata", true, 10, time.Minute, policy)

			key := CacheKey{Key: "https://sp.example.com"}
			err := cache.Set(key, "metadata-view")
			assert.NoError(t, err)

			value, found := cache.Get(key)
			assert.True(t, found)
			assert.Equal(t, "metadata-view", value)

			// Overwriting updates the stored value.
			err = cache.Set(key, "metadata-view-v2")
			assert.NoError(t, err)
			value, found = cache.Get(key)
			assert.True(t, found)
			assert.Equal(t, "metadata-view-v2", value)

			_, found = cache.Get(CacheKey{Key: "https://missing.example.com"})
			assert.False(t, found)
		})
	}
}

func (suite *InMemoryCacheTestSuite) TestDelete() {
	cache := newInMemoryCache[string]("metadata", true, 10, time.Minute, evictionPolicyLRU)

	key := CacheKey{Key: "https://sp.example.com"}
	assert.NoError(suite.T(), cache.Set(key, "metadata-view"))

	assert.NoError(suite.T(), cache.Delete(key))
	_, found := cache.Get(key)
	assert.False(suite.T(), found)

	// Deleting a missing key is a no-op.
	assert.NoError(suite.T(), cache.Delete(CacheKey{Key: "https://missing.example.com"}))
}

func (suite *InMemoryCacheTestSuite) TestClear() {
	cache := newInMemoryCache[string]("metadata", true, 10, time.Minute, evictionPolicyLRU)

	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "a"}, "1"))
	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "b"}, "2"))

	assert.NoError(suite.T(), cache.Clear())

	_, found := cache.Get(CacheKey{Key: "a"})
	assert.False(suite.T(), found)
	assert.Equal(suite.T(), 0, cache.GetStats().Size)
}

func (suite *InMemoryCacheTestSuite) TestExpiry() {
	cache := newInMemoryCache[string]("metadata", true, 10, 50*time.Millisecond, evictionPolicyLRU)

	key := CacheKey{Key: "https://sp.example.com"}
	assert.NoError(suite.T(), cache.Set(key, "metadata-view"))

	value, found := cache.Get(key)
	assert.True(suite.T(), found)
	assert.Equal(suite.T(), "metadata-view", value)

	time.Sleep(80 * time.Millisecond)

	_, found = cache.Get(key)
	assert.False(suite.T(), found)
}

func (suite *InMemoryCacheTestSuite) TestCleanupExpired() {
	cache := newInMemoryCache[string]("metadata", true, 10, 50*time.Millisecond, evictionPolicyLRU)

	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "a"}, "1"))
	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "b"}, "2"))

	time.Sleep(80 * time.Millisecond)
	cache.CleanupExpired()

	assert.Equal(suite.T(), 0, cache.GetStats().Size)
}

func (suite *InMemoryCacheTestSuite) TestLRUEviction() {
	cache := newInMemoryCache[string]("metadata", true, 2, time.Minute, evictionPolicyLRU)

	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "a"}, "1"))
	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "b"}, "2"))

	// Touch "a" so "b" becomes the least recently used entry.
	_, found := cache.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), found)

	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "c"}, "3"))

	_, found = cache.Get(CacheKey{Key: "b"})
	assert.False(suite.T(), found)
	_, found = cache.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), found)
	_, found = cache.Get(CacheKey{Key: "c"})
	assert.True(suite.T(), found)

	assert.Equal(suite.T(), int64(1), cache.GetStats().EvictCount)
}

func (suite *InMemoryCacheTestSuite) TestLFUEviction() {
	cache := newInMemoryCache[string]("metadata", true, 2, time.Minute, evictionPolicyLFU)

	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "a"}, "1"))
	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "b"}, "2"))

	// Access "a" repeatedly so "b" is the least frequently used entry.
	for i := 0; i < 3; i++ {
		_, found := cache.Get(CacheKey{Key: "a"})
		assert.True(suite.T(), found)
	}

	assert.NoError(suite.T(), cache.Set(CacheKey{Key: "c"}, "3"))

	_, found := cache.Get(CacheKey{Key: "b"})
	assert.False(suite.T(), found)
	_, found = cache.Get(CacheKey{Key: "a"})
	assert.True(suite.T(), found)
}

func (suite *InMemoryCacheTestSuite) TestDisabledCache() {
	cache := newInMemoryCache[string]("metadata", false, 10, time.Minute, evictionPolicyLRU)

	key := CacheKey{Key: "https://sp.example.com"}
	assert.NoError(suite.T(), cache.Set(key, "metadata-view"))

	_, found := cache.Get(key)
	assert.False(suite.T(), found)

	assert.NoError(suite.T(), cache.Delete(key))
	assert.NoError(suite.T(), cache.Clear())
	assert.False(suite.T(), cache.GetStats().Enabled)
}

func (suite *InMemoryCacheTestSuite) TestGetStats() {
	cache := newInMemoryCache[string]("metadata", true, 10, time.Minute, evictionPolicyLRU)

	key := CacheKey{Key: "https://sp.example.com"}
	assert.NoError(suite.T(), cache.Set(key, "metadata-view"))

	_, _ = cache.Get(key)
	_, _ = cache.Get(CacheKey{Key: "https://missing.example.com"})

	stats := cache.GetStats()
	assert.True(suite.T(), stats.Enabled)
	assert.Equal(suite.T(), 1, stats.Size)
	assert.Equal(suite.T(), int64(1), stats.HitCount)
	assert.Equal(suite.T(), int64(1), stats.MissCount)
	assert.Equal(suite.T(), 0.5, stats.HitRate)
}
