package main

import (
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"strings"

	"github.com/mithrel/readmegen/internal/render"
	"github.com/mithrel/readmegen/internal/util"
	"github.com/mithrel/readmegen/pkg/api"
)

// Prints a README for a randomly assembled profile, for docs and screenshots.
func main() {
	seed := flag.Int64("seed", 42, "random seed; the same seed prints the same README")
	flag.Parse()

	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(*seed))

	user := fmt.Sprintf("sample%03d", mr.Intn(1000))
	p := api.NewProfile()
	p.Name = "Sample " + strings.ToUpper(user[:1]) + user[1:]
	p.Tagline = "Software Developer | Tech Enthusiast"
	p.AboutMe = "Generated sample profile.\nSeed: " + fmt.Sprint(*seed)
	p.GitHubUsername = user
	p.ShowTopLanguages = mr.Float64() < 0.7

	// 3–8 unique skills, 1–3 socials
	for _, s := range sample(mr, util.KnownSkills, 3+mr.Intn(6)) {
		p.AddSkill(s)
	}
	for _, s := range sample(mr, util.KnownSocials, 1+mr.Intn(3)) {
		p.AddSocial(s, "https://example.com/"+strings.ToLower(s)+"/"+user)
	}

	if _, err := os.Stdout.WriteString(render.Markdown(p)); err != nil {
		panic(err)
	}
}

func sample(r *mrand.Rand, pool []string, k int) []string {
	if k >= len(pool) {
		k = len(pool)
	}
	idx := r.Perm(len(pool))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}
