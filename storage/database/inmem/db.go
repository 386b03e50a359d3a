// Package inmemdb provides map-backed repositories for tests and local runs
// without a postgres instance.
package inmemdb

import (
	"sync"

	"github.com/connectingcampuses/backend/core/attendance"
	"github.com/connectingcampuses/backend/core/carpool"
	"github.com/connectingcampuses/backend/core/lostfound"
	"github.com/connectingcampuses/backend/core/market"
	"github.com/connectingcampuses/backend/core/newsroom"
	"github.com/connectingcampuses/backend/core/user"
)

type (
	DB struct {
		user       *userTable
		attendance *attendanceTable
		newsroom   *newsroomTable
		lostfound  *lostfoundTable
		carpool    *carpoolTable
		market     *marketTable
	}

	userTable struct {
		t     map[string]*user.User
		mutex sync.RWMutex
	}

	attendanceTable struct {
		t     map[string]*attendance.Sheet // key: userID + "/" + subject
		mutex sync.RWMutex
	}

	newsroomTable struct {
		t     map[string]*newsroom.Event
		mutex sync.RWMutex
	}

	lostfoundTable struct {
		t     map[string]*lostfound.Item
		mutex sync.RWMutex
	}

	carpoolTable struct {
		t     map[string]*carpool.Post
		mutex sync.RWMutex
	}

	marketTable struct {
		t     map[string]*market.Listing
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{t: make(map[string]*user.User)},
		attendance: &attendanceTable{t: make(map[string]*attendance.Sheet)},
		newsroom:   &newsroomTable{t: make(map[string]*newsroom.Event)},
		lostfound:  &lostfoundTable{t: make(map[string]*lostfound.Item)},
		carpool:    &carpoolTable{t: make(map[string]*carpool.Post)},
		market:     &marketTable{t: make(map[string]*market.Listing)},
	}
	return db, nil
}
