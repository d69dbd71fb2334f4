package dex

// Living-dex tracker.  Watches a directory of save files; every time the
// game writes one, the save is re-parsed, newly seen species are recorded,
// and any milestone that has just become true is announced on the events
// channel.  State is per identity, so multiple playthroughs in one
// directory don't pollute each other.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"pokedump/readers"
	"pokedump/types"
)

const STATE_FILE = "pokedex.json"

// Event is one milestone unlock.
type Event struct {
	Name     string
	Desc     string
	Category string
}

type state_type struct {
	Seen     map[string]map[int]bool    // species seen, per identity
	Unlocked map[string]map[string]bool // milestones earned, per identity
}

type Dex interface {
	Start_watching(events chan<- *Event) error
	Stop_watching()
}

func New_watcher(dir string, policy types.EmptyPolicy) Dex {
	return &dir_watcher{dir: dir, policy: policy}
}

type dir_watcher struct {
	dir           string
	policy        types.EmptyPolicy
	last_identity string
	watcher       *fsnotify.Watcher
	state         state_type
}

func (dw *dir_watcher) Start_watching(events chan<- *Event) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dw.watcher = watcher
	dw.load_state()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) && strings.HasSuffix(strings.ToUpper(event.Name), ".SAV") {
					dw.handle_file(event.Name, events)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Println(err)
			}
		}
	}()

	err = dw.watcher.Add(dw.dir)
	if err != nil {
		dw.watcher.Close()
	}

	return err
}

func (dw *dir_watcher) Stop_watching() {
	dw.watcher.Close()
}

func (dw *dir_watcher) save_state() {
	state_file := filepath.Join(dw.dir, STATE_FILE)
	b, _ := json.Marshal(dw.state)
	os.WriteFile(state_file, b, 0644)
}

func (dw *dir_watcher) load_state() {
	state_file := filepath.Join(dw.dir, STATE_FILE)
	bytes, _ := os.ReadFile(state_file)
	json.Unmarshal(bytes, &dw.state)
	if dw.state.Seen == nil {
		dw.state.Seen = map[string]map[int]bool{}
	}
	if dw.state.Unlocked == nil {
		dw.state.Unlocked = map[string]map[string]bool{}
	}
}

// GetState loads the tracker state without watching anything.
func GetState(dir string) *state_type {
	state := state_type{}
	bytes, _ := os.ReadFile(filepath.Join(dir, STATE_FILE))
	json.Unmarshal(bytes, &state)
	return &state
}

// Identity keys the state: one save directory can hold several
// playthroughs, and trainer name plus public id tells them apart.
func Identity(save *readers.Save) string {
	return fmt.Sprintf("%v:%05d", save.Trainer_name(), save.Trainer_id()&0xFFFF)
}

func (dw *dir_watcher) handle_file(filename string, out chan<- *Event) {
	// Wait for the game to finish with the file
	time.Sleep(2 * time.Second)

	image, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println("Failed to load file", filename, "-", err)
		return
	}
	save, err := readers.Locate(image)
	if err != nil {
		fmt.Println("Failed to parse file", filename, "-", err)
		return
	}

	party, _, err := readers.Decode_party(save, dw.policy)
	if err != nil {
		fmt.Println("Failed to parse file", filename, "-", err)
		return
	}
	boxes, _ := readers.Decode_boxes(save, dw.policy)

	identity := Identity(save)
	if dw.last_identity != identity {
		fmt.Println("Identity is", identity)
		fmt.Println()
		dw.last_identity = identity
	}

	_, ok := dw.state.Seen[identity]
	if !ok {
		dw.state.Seen[identity] = map[int]bool{}
	}

	arg := Arg{Party: party, Boxes: boxes, Seen: dw.state.Seen[identity]}
	for _, pokemon := range arg.All() {
		dw.state.Seen[identity][pokemon.Species_id] = true
	}

	for _, list := range Milestone_list {
		for _, milestone := range list.Milestones {

			// Recovering here keeps one badly-written milestone test from
			// bringing the whole tracker down.
			test_wrap := func(m *Milestone, arg Arg) bool {
				defer func() {
					if recover() != nil {
						fmt.Println("Something went *very* wrong when testing milestone \"" + m.Name + "\":")
						debug.PrintStack()
					}
				}()

				return m.Test(&arg)
			}

			if !dw.state.Unlocked[identity][milestone.Id] && test_wrap(&milestone, arg) {
				out <- &Event{milestone.Name, milestone.Expl, list.Category}

				_, ok := dw.state.Unlocked[identity]
				if !ok {
					dw.state.Unlocked[identity] = map[string]bool{}
				}
				dw.state.Unlocked[identity][milestone.Id] = true
			}
		}
	}

	dw.save_state()
}
