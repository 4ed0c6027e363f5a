package styles

// allPacks holds every pack with its reference paintings, best five first.
// Path, Title/Artist, and Prompt at the same index all describe the same
// painting; keep them aligned when editing.
var allPacks = []Pack{
	{
		ID:   PackMasters,
		Name: "Masters",
		Entries: []Entry{
			{
				Path:   "/static/landing/styles/masters/masters-02.jpg",
				Title:  "Mona Lisa",
				Artist: "Leonardo da Vinci",
				Prompt: "in the style of Leonardo da Vinci's Mona Lisa: sfumato with soft, blended strokes and no hard edges, muted earth palette (umber, ochre, olive green), warm golden-brown skin tones, hazy atmospheric background. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-04.jpg",
				Title:  "The Scream",
				Artist: "Edvard Munch",
				Prompt: "in the style of Edvard Munch's The Scream: swirling, wavy brushstrokes in sky, orange and yellow undulating sky, blue-green water, distorted perspective, expressionist anxiety. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-15.jpg",
				Title:  "The Persistence of Memory",
				Artist: "Salvador Dalí",
				Prompt: "in the style of Salvador Dalí's The Persistence of Memory: smooth, meticulous brushwork, soft melting forms, warm desert palette (sand, blue sky), surrealist dreamscape. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-01.jpg",
				Title:  "The Creation of Adam",
				Artist: "Michelangelo",
				Prompt: "in the style of Michelangelo's The Creation of Adam: fresco technique with soft, blended brushwork, warm flesh tones (peach, terracotta), cool blue-grey background, idealized Renaissance anatomy, divine touch gesture. Preserve the subject's face, identity, and likeness.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-13.jpg",
				Title:  "Sunflowers",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's Sunflowers: thick impasto brushstrokes in visible directions, vibrant yellows and ochres, green stems, textured paint surface, post-impressionist. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-03.jpg",
				Title:  "Composition with Grids",
				Artist: "Piet Mondrian",
				Prompt: "in the style of Piet Mondrian's geometric abstraction: flat, hard-edge color blocks, primary palette (red, yellow, blue) on white, black grid lines, no brush texture, clean geometric planes. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-05.jpg",
				Title:  "The Third of May 1808",
				Artist: "Francisco Goya",
				Prompt: "in the style of Francisco Goya's The Third of May 1808: dramatic chiaroscuro, dark browns and blacks, stark white shirt, warm lantern light, loose brushwork for crowd, tight detail on central figure. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-06.jpg",
				Title:  "Judith Beheading Holofernes",
				Artist: "Caravaggio",
				Prompt: "in the style of Caravaggio's Judith Beheading Holofernes: tenebrist lighting with deep black shadows, single light source, rich red fabric, creamy flesh tones, precise brushwork on faces. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-07.jpg",
				Title:  "The Night Watch",
				Artist: "Rembrandt van Rijn",
				Prompt: "in the style of Rembrandt's The Night Watch: Dutch Golden Age chiaroscuro, warm amber and browns, golden highlights on faces, deep shadows, visible brushwork, group portrait composition. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-08.jpg",
				Title:  "Las Meninas",
				Artist: "Diego Velázquez",
				Prompt: "in the style of Diego Velázquez's Las Meninas: Spanish Baroque, layered brushwork, warm greys and browns, cream and gold fabrics, complex mirror composition, court portrait. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-09.jpg",
				Title:  "Chiaroscuro Portrait",
				Artist: "Rembrandt van Rijn",
				Prompt: "in the style of Rembrandt's chiaroscuro portraits: thick impasto in lit areas, smooth blending in shadows, warm amber and umber palette, deep black backgrounds, visible brush marks on skin. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-10.jpg",
				Title:  "Composition VIII",
				Artist: "Wassily Kandinsky",
				Prompt: "in the style of Wassily Kandinsky's Composition VIII: flat geometric shapes, primary colors (red, blue, yellow) plus black and white, crisp edges, abstract circles and lines, no realistic texture. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-11.jpg",
				Title:  "Impression, Sunrise",
				Artist: "Claude Monet",
				Prompt: "in the style of Claude Monet's Impression, Sunrise: short, broken brushstrokes, orange and pink sunrise, blue-grey harbor, soft hazy atmosphere, loose impressionist technique. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-12.jpg",
				Title:  "Luncheon of the Boating Party",
				Artist: "Pierre-Auguste Renoir",
				Prompt: "in the style of Pierre-Auguste Renoir's Luncheon of the Boating Party: soft, blended impressionist strokes, warm skin tones, white and cream fabrics, dappled sunlight, vibrant blues and greens. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/masters/masters-14.jpg",
				Title:  "Les Demoiselles d'Avignon",
				Artist: "Pablo Picasso",
				Prompt: "in the style of Pablo Picasso's Les Demoiselles d'Avignon: angular geometric planes, ochre and pink palette, African mask influence, fragmented cubist forms, bold outlines. Preserve the subject's face and likeness.",
			},
		},
	},
	{
		ID:   PackImpressionColor,
		Name: "Impression & Color",
		Entries: []Entry{
			{
				Path:   "/static/landing/styles/impression-color/impression-color-13.jpg",
				Title:  "The Starry Night",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's Starry Night: thick swirling impasto strokes, deep cobalt blue sky, bright yellow and orange stars, swirling cypress in dark green, visible brush texture throughout. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-02.jpg",
				Title:  "Water Lilies",
				Artist: "Claude Monet",
				Prompt: "in the style of Claude Monet's Water Lilies: soft, broken brushstrokes, pastel greens and pinks, lavender reflections on water, dappled light, no hard edges. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-01.jpg",
				Title:  "Starry Night Over the Rhône",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's night city scenes: short thick brushstrokes, warm yellows and oranges for street lamps, deep blue night sky, cobblestone texture. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-08.jpg",
				Title:  "Irises",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's Irises: thick directional brushstrokes, vibrant blues and purples, green foliage, yellow accents, expressive texture. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-11.jpg",
				Title:  "Bal du moulin de la Galette",
				Artist: "Pierre-Auguste Renoir",
				Prompt: "in the style of Pierre-Auguste Renoir's Bal du moulin de la Galette: impressionist dappled light, warm skin tones, blue and white dresses, outdoor cafe. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-03.jpg",
				Title:  "The Ballet Class",
				Artist: "Edgar Degas",
				Prompt: "in the style of Edgar Degas's ballet class: soft pastel brushwork, peach and cream tones, tutus in white and pink, rehearsal studio atmosphere. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-04.jpg",
				Title:  "Where Do We Come From?",
				Artist: "Paul Gauguin",
				Prompt: "in the style of Paul Gauguin's Where Do We Come From: flat color blocks, Tahitian palette (rich greens, oranges, golds), bold outlines, simplified forms. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-05.jpg",
				Title:  "Woman with a Parasol",
				Artist: "Claude Monet",
				Prompt: "in the style of Claude Monet's Woman with a Parasol: loose impressionist strokes, sky blue and white, soft greens, dappled sunlight, flowing dress. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-06.jpg",
				Title:  "The Japanese Footbridge",
				Artist: "Claude Monet",
				Prompt: "in the style of Claude Monet's Japanese Bridge: wisteria purples and greens, arched bridge, water lily pond, soft blended strokes. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-07.jpg",
				Title:  "Impression, Sunrise",
				Artist: "Claude Monet",
				Prompt: "in the style of Claude Monet's Impression, Sunrise: short strokes, orange and pink sun, blue-grey harbor, hazy atmosphere. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-09.jpg",
				Title:  "Mont Sainte-Victoire",
				Artist: "Paul Cézanne",
				Prompt: "in the style of Paul Cézanne's Mont Sainte-Victoire: structured brushwork, geometric planes, ochre and blue palette, post-impressionist. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-10.jpg",
				Title:  "Luncheon of the Boating Party",
				Artist: "Pierre-Auguste Renoir",
				Prompt: "in the style of Pierre-Auguste Renoir's Luncheon of the Boating Party: soft blended strokes, warm skin tones, white and cream, dappled sunlight. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-12.jpg",
				Title:  "The Swing",
				Artist: "Pierre-Auguste Renoir",
				Prompt: "in the style of Pierre-Auguste Renoir's The Swing: soft forest greens, dappled light, woman in white dress. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-14.jpg",
				Title:  "Café Terrace at Night",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's Café Terrace at Night: bright yellow awning, starry blue sky, warm orange cafe glow, cobblestone, thick brushstrokes. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/impression-color/impression-color-15.jpg",
				Title:  "Sunflowers",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's Sunflowers: thick impasto brushstrokes, vibrant yellows and ochres, green stems, textured paint. Preserve the subject's face and identity.",
			},
		},
	},
	{
		ID:   PackModernAbstract,
		Name: "Modern & Abstract",
		Entries: []Entry{
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-09.jpg",
				Title:  "The Scream",
				Artist: "Edvard Munch",
				Prompt: "in the style of Edvard Munch's The Scream: swirling orange and yellow sky, blue water, expressionist distortion. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-12.jpg",
				Title:  "The Persistence of Memory",
				Artist: "Salvador Dalí",
				Prompt: "in the style of Salvador Dalí's Persistence of Memory: smooth melting forms, warm desert palette, surrealist. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-03.jpg",
				Title:  "Convergence",
				Artist: "Jackson Pollock",
				Prompt: "in the style of Jackson Pollock's drip painting: splattered and dripped paint lines, black and white with color accents, energetic web, abstract expressionist. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-02.jpg",
				Title:  "Orange and Yellow",
				Artist: "Mark Rothko",
				Prompt: "in the style of Mark Rothko's color fields: large blocks of color, soft blurred edges, orange and yellow or warm tones, contemplative. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-15.jpg",
				Title:  "Les Demoiselles d'Avignon",
				Artist: "Pablo Picasso",
				Prompt: "in the style of Pablo Picasso's Les Demoiselles d'Avignon: angular geometric planes, ochre and pink, proto-cubist. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-01.jpg",
				Title:  "Composition VIII",
				Artist: "Wassily Kandinsky",
				Prompt: "in the style of Wassily Kandinsky's Composition VIII: flat geometric shapes, primary colors (red, blue, yellow) plus black, crisp edges, circles and abstract forms. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-04.jpg",
				Title:  "Black Square",
				Artist: "Kazimir Malevich",
				Prompt: "in the style of Kazimir Malevich's Black Square: suprematist, geometric shapes, black on white, bold contrast, minimal. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-05.jpg",
				Title:  "Broadway Boogie Woogie",
				Artist: "Piet Mondrian",
				Prompt: "in the style of Piet Mondrian's Broadway Boogie Woogie: grid of primary colors, yellow, red, blue squares, black lines, geometric. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-06.jpg",
				Title:  "Woman I",
				Artist: "Willem de Kooning",
				Prompt: "in the style of Willem de Kooning's Woman I: aggressive brushwork, flesh pinks and yellows, distorted forms, abstract expressionist. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-07.jpg",
				Title:  "Street, Dresden",
				Artist: "Ernst Ludwig Kirchner",
				Prompt: "in the style of Ernst Ludwig Kirchner's Street Dresden: angular brushstrokes, bold pink and purple, yellow and green, German expressionist urban. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-08.jpg",
				Title:  "Blue Horse I",
				Artist: "Franz Marc",
				Prompt: "in the style of Franz Marc's Blue Horse I: bold blue animal form, expressionist, geometric simplification. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-10.jpg",
				Title:  "The Lovers",
				Artist: "René Magritte",
				Prompt: "in the style of René Magritte's The Lovers: smooth surrealist brushwork, cloth draped over faces, mysterious. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-11.jpg",
				Title:  "The Elephants",
				Artist: "Salvador Dalí",
				Prompt: "in the style of Salvador Dalí's The Elephants: surrealist, elongated legs, dreamlike desert, meticulous detail. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-13.png",
				Title:  "Man with a Guitar",
				Artist: "Georges Braque",
				Prompt: "in the style of Georges Braque's Cubism: fragmented geometric planes, muted browns and greys, analytical cubist. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/modern-abstract/modern-abstract-14.jpg",
				Title:  "Girl with a Mandolin",
				Artist: "Pablo Picasso",
				Prompt: "in the style of Pablo Picasso's Girl with a Mandolin: cubist geometric planes, ochre and brown palette, fragmented forms. Preserve the subject's face and likeness.",
			},
		},
	},
	{
		ID:   PackAncientWorlds,
		Name: "Ancient Worlds",
		Entries: []Entry{
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-11.jpg",
				Title:  "Fayum Mummy Portraits",
				Artist: "Roman Egypt",
				Prompt: "in the style of Fayum mummy portraits: encaustic wax, Roman Egypt, realistic faces, warm skin tones. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-01.jpg",
				Title:  "Nebamun Hunting in the Marshes",
				Artist: "Ancient Egypt",
				Prompt: "in the style of Ancient Egyptian tomb painting: flat figures in profile, warm earth tones (ochre, terracotta), black outlines, hieroglyphic aesthetic. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-08.jpg",
				Title:  "Alexander Mosaic",
				Artist: "Rome",
				Prompt: "in the style of Roman Alexander Mosaic: tessellated stone, battle scene, warm earth tones. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-05.jpg",
				Title:  "Achilles and Ajax Playing Dice Amphora",
				Artist: "Greece",
				Prompt: "in the style of Greek black-figure pottery: black figures on red clay, mythological scenes, amphora form. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-13.jpg",
				Title:  "Ishtar Gate Reliefs",
				Artist: "Babylon",
				Prompt: "in the style of Babylonian Ishtar Gate: blue glaze tiles, lion relief, turquoise and gold. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-02.jpg",
				Title:  "Akhenaten and Nefertiti with their Children",
				Artist: "Egypt (Amarna)",
				Prompt: "in the style of Amarna period Egyptian art: elongated forms, warm gold and blue, sun disk motifs, naturalistic. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-03.jpg",
				Title:  "Book of the Dead of Hunefer",
				Artist: "Egypt",
				Prompt: "in the style of Egyptian Book of the Dead: papyrus cream background, flat figures, red and black ink, symbolic imagery. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-04.jpg",
				Title:  "Tomb of Ramesses I Wall Paintings",
				Artist: "Egypt",
				Prompt: "in the style of Egyptian tomb wall paintings: Ramesside period, warm ochre and blue, ceremonial scenes. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-06.jpg",
				Title:  "The Berlin Painter Amphora",
				Artist: "Greece",
				Prompt: "in the style of Greek red-figure pottery: red figures on black, elegant line work, classical. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-07.jpg",
				Title:  "The Francois Vase",
				Artist: "Greece",
				Prompt: "in the style of Greek Francois Vase: black-figure, narrative friezes, terracotta. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-09.jpg",
				Title:  "Villa of Livia Garden Room",
				Artist: "Rome",
				Prompt: "in the style of Roman Villa of Livia fresco: garden room, lush green foliage, naturalistic, warm stone. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-10.jpg",
				Title:  "Pompeii Fresco of Bacchus",
				Artist: "Rome",
				Prompt: "in the style of Pompeii fresco: Bacchus, Roman wall painting, warm red and ochre. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-12.jpg",
				Title:  "Standard of Ur",
				Artist: "Mesopotamia",
				Prompt: "in the style of Mesopotamian Standard of Ur: lapis lazuli blue, gold, mosaic panels. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-14.jpg",
				Title:  "Ajanta Cave Paintings",
				Artist: "India",
				Prompt: "in the style of Ajanta cave paintings: Indian Buddhist, flowing lines, rich reds and greens. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/ancient-worlds/ancient-worlds-15.jpg",
				Title:  "Han Dynasty Silk Paintings",
				Artist: "Ancient China",
				Prompt: "in the style of Han Dynasty silk paintings: delicate brushwork, muted earth tones, flowing. Preserve the subject's face and identity.",
			},
		},
	},
	{
		ID:   PackEvolutionPortraits,
		Name: "Evolution of Portraits",
		Entries: []Entry{
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-08.jpg",
				Title:  "Girl with a Pearl Earring",
				Artist: "Johannes Vermeer",
				Prompt: "in the style of Johannes Vermeer's Girl with a Pearl Earring: soft diffused light, pearl earring, blue and yellow turban. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-05.jpg",
				Title:  "Mona Lisa",
				Artist: "Leonardo da Vinci",
				Prompt: "in the style of Leonardo da Vinci's Mona Lisa: sfumato soft blending, muted earth tones, enigmatic smile. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-15.jpg",
				Title:  "Marilyn Diptych",
				Artist: "Andy Warhol",
				Prompt: "in the style of Andy Warhol's Marilyn: Pop Art screen print, bold pink and yellow, repeated image. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-14.jpg",
				Title:  "Self-Portrait with Thorn Necklace and Hummingbird",
				Artist: "Frida Kahlo",
				Prompt: "in the style of Frida Kahlo's self-portrait: thorn necklace, Mexican folk colors, symbolic. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-11.jpg",
				Title:  "Self-Portrait with Bandaged Ear",
				Artist: "Vincent van Gogh",
				Prompt: "in the style of Vincent van Gogh's self-portrait: bandaged ear, thick directional brushstrokes, greens and ochres. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-01.jpg",
				Title:  "Fayum Mummy Portraits",
				Artist: "Roman Egypt",
				Prompt: "in the style of Fayum mummy portraits: encaustic wax, Roman Egypt, realistic faces, warm skin tones, dark eyes. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-02.jpg",
				Title:  "Nefertari in the Tomb of Nefertari",
				Artist: "Egypt",
				Prompt: "in the style of Egyptian tomb of Nefertari: warm ochre and blue, flat figures, hieroglyphic aesthetic. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-03.jpg",
				Title:  "Portrait of a Young Woman",
				Artist: "Medieval",
				Prompt: "in the style of Medieval portrait: flat iconic style, gold leaf background, rich blues and reds. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-04.png",
				Title:  "Christ Pantocrator",
				Artist: "Byzantine",
				Prompt: "in the style of Byzantine Christ Pantocrator: gold background, solemn face, dark robes, iconic. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-06.jpg",
				Title:  "Portrait of Baldassare Castiglione",
				Artist: "Raphael",
				Prompt: "in the style of Raphael's portrait: Renaissance soft modeling, warm skin, dark background. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-07.jpg",
				Title:  "Self-Portrait",
				Artist: "Albrecht Dürer",
				Prompt: "in the style of Albrecht Dürer's self-portrait: Northern Renaissance, meticulous detail, fur collar. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-09.jpg",
				Title:  "Self-Portrait with Two Circles",
				Artist: "Rembrandt",
				Prompt: "in the style of Rembrandt's self-portrait: chiaroscuro, warm amber and brown, thick brushwork in light. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-10.jpg",
				Title:  "Portrait of Madame X",
				Artist: "John Singer Sargent",
				Prompt: "in the style of John Singer Sargent's Madame X: elegant black dress, pale skin, dramatic pose. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-12.jpg",
				Title:  "Les Demoiselles d'Avignon",
				Artist: "Pablo Picasso",
				Prompt: "in the style of Pablo Picasso's Les Demoiselles: proto-cubist angular planes, ochre and pink. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/evolution-portraits/evolution-portraits-13.jpg",
				Title:  "Portrait of Dora Maar",
				Artist: "Pablo Picasso",
				Prompt: "in the style of Pablo Picasso's portrait of Dora Maar: cubist fragmented planes, muted palette. Preserve the subject's face and identity.",
			},
		},
	},
	{
		ID:   PackRoyaltyPortraits,
		Name: "Royalty & Power",
		Entries: []Entry{
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-01.jpg",
				Title:  "Napoleon Crossing the Alps",
				Artist: "Jacques-Louis David",
				Prompt: "in the style of Jacques-Louis David's Napoleon Crossing the Alps: neoclassical, heroic equestrian, red cape, grey horse, dramatic sky. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-03.jpg",
				Title:  "Portrait of Henry VIII",
				Artist: "Hans Holbein the Younger",
				Prompt: "in the style of Hans Holbein's Henry VIII: Tudor portrait, rich red and gold fabrics, imposing. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-12.jpg",
				Title:  "Portrait of Emperor Rudolf II as Vertumnus",
				Artist: "Giuseppe Arcimboldo",
				Prompt: "in the style of Giuseppe Arcimboldo's Vertumnus: composite portrait, fruits and vegetables, autumn palette. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-02.jpg",
				Title:  "Portrait of Louis XIV",
				Artist: "Hyacinthe Rigaud",
				Prompt: "in the style of Hyacinthe Rigaud's Louis XIV: baroque, royal blue and gold, ermine, grand pose. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-09.jpg",
				Title:  "The Blue Boy",
				Artist: "Thomas Gainsborough",
				Prompt: "in the style of Thomas Gainsborough's Blue Boy: blue satin costume, aristocratic, 18th century. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-04.jpg",
				Title:  "Queen Elizabeth I Armada Portrait",
				Artist: "George Gower",
				Prompt: "in the style of Elizabethan Armada portrait: jeweled, pearl necklace, black dress, royal. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-05.jpg",
				Title:  "Equestrian Portrait of Charles I",
				Artist: "Anthony van Dyck",
				Prompt: "in the style of Anthony van Dyck's equestrian portrait: baroque, noble pose, rich fabrics. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-06.jpg",
				Title:  "Portrait of Pope Innocent X",
				Artist: "Diego Velázquez",
				Prompt: "in the style of Diego Velázquez's Pope Innocent X: baroque chiaroscuro, red silk, dramatic lighting. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-07.jpg",
				Title:  "Philip IV in Brown and Silver",
				Artist: "Diego Velázquez",
				Prompt: "in the style of Velázquez's Philip IV: Spanish court, brown and silver, rich fabrics. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-08.jpg",
				Title:  "Portrait of Madame de Pompadour",
				Artist: "François Boucher",
				Prompt: "in the style of François Boucher's Madame de Pompadour: rococo, pastel pink and blue, decorative. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-10.jpg",
				Title:  "Portrait of the Duke of Wellington",
				Artist: "Francisco Goya",
				Prompt: "in the style of Francisco Goya's portrait: Spanish master, dark brown tones, psychological. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-11.jpg",
				Title:  "Self-Portrait as a Nobleman",
				Artist: "Lorenzo Lippi",
				Prompt: "in the style of Lorenzo Lippi's nobleman portrait: baroque, aristocratic, dark background. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-13.jpg",
				Title:  "Emperor Qianlong in Court Dress",
				Artist: "Giuseppe Castiglione",
				Prompt: "in the style of Giuseppe Castiglione's Qianlong: Chinese-European fusion, imperial yellow, detailed. Preserve the subject's face and identity.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-14.jpg",
				Title:  "Shah Jahan on a Terrace",
				Artist: "Mughal School",
				Prompt: "in the style of Mughal miniature Shah Jahan: jewel tones, intricate detail, lapis and gold. Preserve the subject's face and likeness.",
			},
			{
				Path:   "/static/landing/styles/royalty-portraits/royalty-portraits-15.jpg",
				Title:  "Portrait of Empress Catherine II",
				Artist: "Fyodor Rokotov",
				Prompt: "in the style of Fyodor Rokotov's Catherine II: Russian imperial, elegant, soft brushwork. Preserve the subject's face and identity.",
			},
		},
	},
}
